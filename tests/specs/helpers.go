// Package specs carries helpers shared by the per-resource suites: random
// entity creation through the public API and gjson comparison utilities.
//
// The backend returns created entities at the top level of the response
// body with a numeric "id" field; helpers hand the parsed body back so
// suites can pull whatever they assert on.
package specs

import (
	"encoding/json"
	"net/url"

	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib"
	"github.com/littlebugshop/e2e/tests/lib/fixtures"
)

func IsSubsetExceptKeys(subset gjson.Result, set gjson.Result, keys ...string) {
	setMap := set.Map()
	subsetMap := subset.Map()
	for _, key := range keys {
		subsetMap[key] = setMap[key]
	}
	for k, v := range subsetMap {
		Expect(v).To(Equal(setMap[k]))
	}
}

func ConvertToGJSON(object interface{}) gjson.Result {
	bytes, err := json.Marshal(object)
	Expect(err).ToNot(HaveOccurred())
	return gjson.Parse(string(bytes))
}

func CreateRandomProduct(productAPI *lib.ProductAPI) gjson.Result {
	createPayload := fixtures.RandomProductCreatePayload()
	var createdData gjson.Result
	productAPI.Create(lib.Params{
		"expectPayload": func(body gjson.Result) {
			createdData = body
		},
	}, url.Values{}, createPayload)
	return createdData
}

func CreateRandomCoupon(couponAPI *lib.CouponAdminAPI) gjson.Result {
	createPayload := fixtures.RandomCouponCreatePayload()
	var createdData gjson.Result
	couponAPI.Create(lib.Params{
		"expectPayload": func(body gjson.Result) {
			createdData = body
		},
	}, url.Values{}, createPayload)
	return createdData
}

func CreateRandomAddress(addressAPI *lib.AddressAPI) gjson.Result {
	createPayload := fixtures.RandomAddressCreatePayload()
	var createdData gjson.Result
	addressAPI.Create(lib.Params{
		"expectPayload": func(body gjson.Result) {
			createdData = body
		},
	}, url.Values{}, createPayload)
	return createdData
}

func CreateRandomPaymentMethod(methodAPI *lib.PaymentMethodAPI) gjson.Result {
	createPayload := fixtures.RandomPaymentMethodCreatePayload()
	var createdData gjson.Result
	methodAPI.Create(lib.Params{
		"expectPayload": func(body gjson.Result) {
			createdData = body
		},
	}, url.Values{}, createPayload)
	return createdData
}

func CreateRandomReview(reviewAPI *lib.ReviewAPI, productID interface{}) gjson.Result {
	createPayload := fixtures.RandomReviewCreatePayload()
	var createdData gjson.Result
	reviewAPI.Create(productID, lib.Params{
		"expectPayload": func(body gjson.Result) {
			createdData = body
		},
	}, createPayload)
	return createdData
}

// RegisterRandomUser registers a fresh account through userAPI and returns
// the response body together with the payload used, so callers can log in.
func RegisterRandomUser(userAPI *lib.UserAPI) (gjson.Result, map[string]interface{}) {
	createPayload := fixtures.RandomUserCreatePayload()
	var createdData gjson.Result
	userAPI.Register(lib.Params{
		"expectPayload": func(body gjson.Result) {
			createdData = body
		},
	}, createPayload)
	return createdData, createPayload
}
