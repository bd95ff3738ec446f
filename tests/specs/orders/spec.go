package orders

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

	UserCartAPI   *lib.CartAPI
	UserOrderAPI  *lib.OrderAPI
	AdminOrderAPI *lib.OrderAPI
	AnonOrderAPI  *lib.OrderAPI
)

// placeRandomOrder fills the user's cart with one fresh product and places
// an order from it.
func placeRandomOrder() gjson.Result {
	product := specs.CreateRandomProduct(AdminProductAPI)
	UserCartAPI.AddItem(nil, fixtures.CartItemPayload(product.Get("id").Value()))

	var order gjson.Result
	UserOrderAPI.Place(lib.Params{
		"expectPayload": func(body gjson.Result) {
			order = body
		},
	}, nil)
	return order
}

var _ = Describe("Orders", func() {
	It("places an order from the cart", func() {
		order := placeRandomOrder()
		Expect(order.Map()).To(HaveKey("id"))
		Expect(order.Get("items").Array()).ToNot(BeEmpty())
	})

	It("shows the order to its owner", func() {
		order := placeRandomOrder()

		UserOrderAPI.GetByID(order.Get("id").Value(), lib.Params{
			"expectPayload": func(body gjson.Result) {
				specs.IsSubsetExceptKeys(order, body, "status")
			},
		})
	})

	It("lists the owner's orders under my-orders", func() {
		order := placeRandomOrder()

		UserOrderAPI.MyOrders(lib.Params{
			"expectPayload": func(body gjson.Result) {
				ids := []interface{}{}
				for _, o := range body.Get("orders").Array() {
					ids = append(ids, o.Get("id").Value())
				}
				Expect(ids).To(ContainElement(order.Get("id").Value()))
			},
		})
	})

	It("lets the owner cancel a pending order", func() {
		order := placeRandomOrder()

		UserOrderAPI.Cancel(order.Get("id").Value(), lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("status").String()).To(Equal("cancelled"))
			},
		})
	})

	Describe("admin", func() {
		It("sees every order in the listing", func() {
			order := placeRandomOrder()

			AdminOrderAPI.List(lib.Params{
				"expectPayload": func(body gjson.Result) {
					ids := []interface{}{}
					for _, o := range body.Get("orders").Array() {
						ids = append(ids, o.Get("id").Value())
					}
					Expect(ids).To(ContainElement(order.Get("id").Value()))
				},
			})
		})

		It("tracks pending orders", func() {
			placeRandomOrder()

			AdminOrderAPI.Pending(lib.Params{
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("orders").Array()).ToNot(BeEmpty())
				},
			})
		})

		It("updates an order's status", func() {
			order := placeRandomOrder()

			AdminOrderAPI.UpdateStatus(order.Get("id").Value(), lib.Params{
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("status").String()).To(Equal("shipped"))
				},
			}, map[string]interface{}{"status": "shipped"})
		})

		It("deletes an order", func() {
			order := placeRandomOrder()
			id := order.Get("id").Value()

			AdminOrderAPI.Delete(id, nil)

			UserOrderAPI.GetByID(id, lib.Params{
				"expectStatus": tools.ExpectExactStatus(404),
			})
		})
	})

	Describe("authorization tiers", func() {
		It("denies the full listing to regular users", func() {
			UserOrderAPI.List(lib.Params{
				"expectStatus": tools.ExpectExactStatus(403),
			})
		})

		It("denies everything to anonymous callers", func() {
			AnonOrderAPI.MyOrders(lib.Params{
				"expectStatus": tools.ExpectExactStatus(401),
			})
		})

		It("denies status updates to the order's owner", func() {
			order := placeRandomOrder()

			UserOrderAPI.UpdateStatus(order.Get("id").Value(), lib.Params{
				"expectStatus": tools.ExpectExactStatus(403),
			}, map[string]interface{}{"status": "shipped"})
		})
	})
})
