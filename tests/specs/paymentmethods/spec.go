package paymentmethods

import (
	"net/url"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib"
	"github.com/littlebugshop/e2e/tests/lib/fixtures"
	"github.com/littlebugshop/e2e/tests/lib/tools"
	"github.com/littlebugshop/e2e/tests/specs"
)

var (
	UserMethodAPI *lib.PaymentMethodAPI
	AnonMethodAPI *lib.PaymentMethodAPI
)

var _ = Describe("Payment methods", func() {
	It("stores a new method", func() {
		created := specs.CreateRandomPaymentMethod(UserMethodAPI)
		Expect(created.Map()).To(HaveKey("id"))
	})

	It("masks the card number when read back", func() {
		payload := fixtures.RandomPaymentMethodCreatePayload()
		if payload["type"] != "card" {
			payload = tools.ToMap(fixtures.PaymentMethods()[0])
		}

		var created gjson.Result
		UserMethodAPI.Create(lib.Params{
			"expectPayload": func(body gjson.Result) {
				created = body
			},
		}, url.Values{}, payload)

		UserMethodAPI.Read(lib.Params{
			"method": created.Get("id").Value(),
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("cardNumber").String()).ToNot(Equal(payload["cardNumber"]))
				Expect(body.Get("cardNumber").String()).To(HaveSuffix(payload["cardNumber"].(string)[12:]))
			},
		}, nil)
	})

	It("lists the owner's methods", func() {
		created := specs.CreateRandomPaymentMethod(UserMethodAPI)

		UserMethodAPI.List(lib.Params{
			"expectPayload": func(body gjson.Result) {
				ids := []interface{}{}
				for _, m := range body.Get("paymentMethods").Array() {
					ids = append(ids, m.Get("id").Value())
				}
				Expect(ids).To(ContainElement(created.Get("id").Value()))
			},
		}, nil)
	})

	It("updates and deletes a method", func() {
		created := specs.CreateRandomPaymentMethod(UserMethodAPI)
		id := created.Get("id").Value()

		UserMethodAPI.Update(lib.Params{
			"method": id,
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("label").String()).To(Equal("renamed"))
			},
		}, nil, map[string]interface{}{"label": "renamed"})

		UserMethodAPI.Delete(lib.Params{"method": id}, nil)

		UserMethodAPI.Read(lib.Params{
			"method":       id,
			"expectStatus": tools.ExpectExactStatus(404),
		}, nil)
	})

	It("marks a method as default", func() {
		created := specs.CreateRandomPaymentMethod(UserMethodAPI)

		UserMethodAPI.SetDefault(created.Get("id").Value(), lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("isDefault").Bool()).To(BeTrue())
			},
		})
	})

	DescribeTable("create payload validation",
		func(mutate func(map[string]interface{}), statusCondition string) {
			payload := tools.ToMap(fixtures.PaymentMethods()[0])
			mutate(payload)

			UserMethodAPI.Create(lib.Params{
				"expectStatus": tools.ExpectStatus(statusCondition),
			}, url.Values{}, payload)
		},
		Entry("unknown type is rejected",
			func(p map[string]interface{}) { p["type"] = "barter" }, "%d >= 400"),
		Entry("invalid card number is rejected",
			func(p map[string]interface{}) { p["cardNumber"] = "1234" }, "%d >= 400"),
		Entry("expiry month out of range is rejected",
			func(p map[string]interface{}) { p["expiryMonth"] = 13 }, "%d >= 400"),
	)

	It("requires authentication", func() {
		AnonMethodAPI.List(lib.Params{
			"expectStatus": tools.ExpectExactStatus(401),
		}, nil)
	})
})
