package coupons

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
	AdminAPI     *lib.CouponAdminAPI // admin routes, admin token
	UserAdminAPI *lib.CouponAdminAPI // admin routes, regular-user token

	UserCouponAPI *lib.CouponAPI
	AnonCouponAPI *lib.CouponAPI
)

var _ = Describe("Coupons", func() {
	It("can be created by an admin", func() {
		created := specs.CreateRandomCoupon(AdminAPI)
		Expect(created.Map()).To(HaveKey("id"))
		Expect(created.Get("code").String()).To(HavePrefix("E2E-"))
	})

	It("appears in the admin listing", func() {
		created := specs.CreateRandomCoupon(AdminAPI)

		AdminAPI.List(lib.Params{
			"expectPayload": func(body gjson.Result) {
				codes := []interface{}{}
				for _, c := range body.Get("coupons").Array() {
					codes = append(codes, c.Get("code").Value())
				}
				Expect(codes).To(ContainElement(created.Get("code").Value()))
			},
		}, nil)
	})

	It("can be updated and deleted", func() {
		created := specs.CreateRandomCoupon(AdminAPI)
		id := created.Get("id").Value()

		AdminAPI.Update(lib.Params{
			"coupon": id,
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("discountValue").Float()).To(Equal(15.0))
			},
		}, nil, map[string]interface{}{"discountValue": 15})

		AdminAPI.Delete(lib.Params{"coupon": id}, nil)
	})

	It("reports usage", func() {
		created := specs.CreateRandomCoupon(AdminAPI)

		AdminAPI.Usage(created.Get("id").Value(), lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("usedCount").Int()).To(BeNumerically(">=", 0))
			},
		})
	})

	DescribeTable("create payload validation",
		func(mutate func(map[string]interface{}), statusCondition string) {
			payload := fixtures.RandomCouponCreatePayload()
			mutate(payload)

			AdminAPI.Create(lib.Params{
				"expectStatus": tools.ExpectStatus(statusCondition),
			}, url.Values{}, payload)
		},
		Entry("missing code is rejected",
			func(p map[string]interface{}) { delete(p, "code") }, "%d >= 400"),
		Entry("unknown discount type is rejected",
			func(p map[string]interface{}) { p["discountType"] = "gift" }, "%d >= 400"),
		Entry("zero discount is rejected",
			func(p map[string]interface{}) { p["discountValue"] = 0 }, "%d >= 400"),
	)

	Describe("validation endpoint", func() {
		It("accepts a live coupon", func() {
			created := specs.CreateRandomCoupon(AdminAPI)

			UserCouponAPI.Validate(created.Get("code").String(), lib.Params{
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("valid").Bool()).To(BeTrue())
				},
			})
		})

		It("rejects an unknown code", func() {
			UserCouponAPI.Validate("NO-SUCH-"+tools.RandomStr()[:8], lib.Params{
				"expectStatus": tools.ExpectExactStatus(404),
			})
		})

		It("handles codes with reserved characters", func() {
			UserCouponAPI.Validate("50%/OFF", lib.Params{
				"expectStatus": tools.ExpectStatus("%d >= 400"),
			})
		})

		It("is open to anonymous callers", func() {
			created := specs.CreateRandomCoupon(AdminAPI)

			AnonCouponAPI.Validate(created.Get("code").String(), nil)
		})
	})

	It("denies admin routes to regular users", func() {
		UserAdminAPI.List(lib.Params{
			"expectStatus": tools.ExpectExactStatus(403),
		}, nil)
	})
})
