package payments

import (
	"net/http"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib"
	"github.com/littlebugshop/e2e/tests/lib/configure"
	"github.com/littlebugshop/e2e/tests/lib/endpoints"
	"github.com/littlebugshop/e2e/tests/lib/fixtures"
	"github.com/littlebugshop/e2e/tests/lib/tools"
	"github.com/littlebugshop/e2e/tests/specs"
)

var (
	cfg      configure.Settings
	registry *endpoints.Registry

	userClient *http.Client

	AdminProductAPI *lib.ProductAPI
	UserCartAPI     *lib.CartAPI
	UserOrderAPI    *lib.OrderAPI
	UserMethodAPI   *lib.PaymentMethodAPI

	UserPaymentAPI  *lib.PaymentAPI
	AdminPaymentAPI *lib.PaymentAPI
	AnonPaymentAPI  *lib.PaymentAPI
)

// payRandomOrder places an order and pays for it with a fresh method,
// returning the created transaction.
func payRandomOrder() gjson.Result {
	product := specs.CreateRandomProduct(AdminProductAPI)
	UserCartAPI.AddItem(nil, fixtures.CartItemPayload(product.Get("id").Value()))

	var order gjson.Result
	UserOrderAPI.Place(lib.Params{
		"expectPayload": func(body gjson.Result) {
			order = body
		},
	}, nil)

	method := specs.CreateRandomPaymentMethod(UserMethodAPI)

	var tx gjson.Result
	UserPaymentAPI.Process(lib.Params{
		"expectPayload": func(body gjson.Result) {
			tx = body
		},
	}, map[string]interface{}{
		"orderId":         order.Get("id").Value(),
		"paymentMethodId": method.Get("id").Value(),
	})
	return tx
}

var _ = Describe("Payments", func() {
	It("processes a payment for an order", func() {
		tx := payRandomOrder()
		Expect(tx.Map()).To(HaveKey("id"))
		Expect(tx.Get("amount").Float()).To(BeNumerically(">", 0))
	})

	It("settles the transaction", func() {
		tx := payRandomOrder()

		err := tools.RetryUntilStatus(userClient, http.MethodGet,
			registry.Payments.GetTransaction(tx.Get("id").Value()), 200, cfg.RequestTimeout)
		Expect(err).ToNot(HaveOccurred())

		UserPaymentAPI.GetTransaction(tx.Get("id").Value(), lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("status").String()).To(Equal("completed"))
			},
		})
	})

	It("lists the owner's transactions", func() {
		tx := payRandomOrder()

		UserPaymentAPI.Transactions(lib.Params{
			"expectPayload": func(body gjson.Result) {
				ids := []interface{}{}
				for _, item := range body.Get("transactions").Array() {
					ids = append(ids, item.Get("id").Value())
				}
				Expect(ids).To(ContainElement(tx.Get("id").Value()))
			},
		})
	})

	It("rejects a payment for a nonexistent order", func() {
		method := specs.CreateRandomPaymentMethod(UserMethodAPI)

		UserPaymentAPI.Process(lib.Params{
			"expectStatus": tools.ExpectExactStatus(404),
		}, map[string]interface{}{
			"orderId":         99999999,
			"paymentMethodId": method.Get("id").Value(),
		})
	})

	It("refunds a settled transaction", func() {
		tx := payRandomOrder()

		AdminPaymentAPI.Refund(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("status").String()).To(Equal("refunded"))
			},
		}, map[string]interface{}{
			"transactionId": tx.Get("id").Value(),
		})
	})

	Describe("admin", func() {
		It("sees all transactions", func() {
			tx := payRandomOrder()

			AdminPaymentAPI.AdminTransactions(lib.Params{
				"expectPayload": func(body gjson.Result) {
					ids := []interface{}{}
					for _, item := range body.Get("transactions").Array() {
						ids = append(ids, item.Get("id").Value())
					}
					Expect(ids).To(ContainElement(tx.Get("id").Value()))
				},
			})
		})

		It("aggregates statistics", func() {
			payRandomOrder()

			AdminPaymentAPI.AdminStatistics(lib.Params{
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("totalRevenue").Float()).To(BeNumerically(">", 0))
					Expect(body.Get("transactionCount").Int()).To(BeNumerically(">=", 1))
				},
			})
		})
	})

	Describe("authorization tiers", func() {
		It("denies refunds to regular users", func() {
			tx := payRandomOrder()

			UserPaymentAPI.Refund(lib.Params{
				"expectStatus": tools.ExpectExactStatus(403),
			}, map[string]interface{}{
				"transactionId": tx.Get("id").Value(),
			})
		})

		It("denies admin views to regular users", func() {
			UserPaymentAPI.AdminStatistics(lib.Params{
				"expectStatus": tools.ExpectExactStatus(403),
			})
		})

		It("denies everything to anonymous callers", func() {
			AnonPaymentAPI.Transactions(lib.Params{
				"expectStatus": tools.ExpectExactStatus(401),
			})
		})
	})
})
