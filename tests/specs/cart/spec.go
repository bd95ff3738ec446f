package cart

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib"
	"github.com/littlebugshop/e2e/tests/lib/fixtures"
	"github.com/littlebugshop/e2e/tests/lib/tools"
	"github.com/littlebugshop/e2e/tests/specs"
)

var (
	AdminProductAPI *lib.ProductAPI
	CouponAdminAPI  *lib.CouponAdminAPI

	UserCartAPI *lib.CartAPI
	AnonCartAPI *lib.CartAPI
)

// addRandomItem puts a fresh product into the user's cart and returns the
// created cart item.
func addRandomItem() gjson.Result {
	product := specs.CreateRandomProduct(AdminProductAPI)

	var item gjson.Result
	UserCartAPI.AddItem(lib.Params{
		"expectPayload": func(body gjson.Result) {
			item = body
		},
	}, fixtures.CartItemPayload(product.Get("id").Value()))
	return item
}

var _ = Describe("Cart", func() {
	BeforeEach(func() {
		UserCartAPI.Clear(lib.Params{
			"expectStatus": tools.ExpectStatus("%d < 500"),
		})
	})

	It("starts empty", func() {
		UserCartAPI.Get(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("items").Array()).To(BeEmpty())
			},
		})
	})

	It("accepts an item and lists it", func() {
		item := addRandomItem()

		UserCartAPI.Get(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("items").Array()).To(HaveLen(1))
				Expect(body.Get("items.0.productId").Value()).To(Equal(item.Get("productId").Value()))
			},
		})
	})

	It("updates an item's quantity", func() {
		item := addRandomItem()

		UserCartAPI.UpdateItem(item.Get("id").Value(), lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("quantity").Int()).To(Equal(int64(7)))
			},
		}, map[string]interface{}{"quantity": 7})
	})

	It("removes an item", func() {
		item := addRandomItem()

		UserCartAPI.RemoveItem(item.Get("id").Value(), nil)

		UserCartAPI.Get(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("items").Array()).To(BeEmpty())
			},
		})
	})

	It("rejects an item for a nonexistent product", func() {
		UserCartAPI.AddItem(lib.Params{
			"expectStatus": tools.ExpectExactStatus(404),
		}, fixtures.CartItemPayload(99999999))
	})

	It("checks out into an order", func() {
		addRandomItem()

		UserCartAPI.Checkout(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Map()).To(HaveKey("id"))
				Expect(body.Get("status").String()).ToNot(BeEmpty())
			},
		}, nil)
	})

	It("refuses to check out an empty cart", func() {
		UserCartAPI.Checkout(lib.Params{
			"expectStatus": tools.ExpectStatus("%d >= 400"),
		}, nil)
	})

	Describe("coupons", func() {
		It("applies and removes a coupon", func() {
			coupon := specs.CreateRandomCoupon(CouponAdminAPI)
			addRandomItem()

			UserCartAPI.ApplyCoupon(lib.Params{
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("coupon.code").String()).To(Equal(coupon.Get("code").String()))
				},
			}, map[string]interface{}{"code": coupon.Get("code").String()})

			UserCartAPI.RemoveCoupon(nil)
		})

		It("rejects an unknown coupon code", func() {
			addRandomItem()

			UserCartAPI.ApplyCoupon(lib.Params{
				"expectStatus": tools.ExpectStatus("%d >= 400"),
			}, map[string]interface{}{"code": "NO-SUCH-CODE"})
		})
	})

	It("requires authentication", func() {
		AnonCartAPI.Get(lib.Params{
			"expectStatus": tools.ExpectExactStatus(401),
		})
	})
})
