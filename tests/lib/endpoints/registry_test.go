package endpoints_test

import (
	"strings"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/littlebugshop/e2e/tests/lib/endpoints"
)

func TestEndpoints(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Endpoint URL registry")
}

const staging = "https://staging.example.com"

var _ = Describe("Registry", func() {
	It("falls back to the local default when base URL is empty", func() {
		Expect(endpoints.New("").Users.Register).
			To(Equal(endpoints.DefaultBaseURL + "/api/Users/register"))
	})

	It("builds identical URLs for identical inputs", func() {
		first := endpoints.New(staging)
		second := endpoints.New(staging)
		Expect(first.Users.Login).To(Equal(second.Users.Login))
		Expect(first.Reviews.GetByID(10, 5)).To(Equal(second.Reviews.GetByID(10, 5)))
	})

	It("prefixes every endpoint with the given base URL", func() {
		ep := endpoints.New(staging)
		Expect(ep.Users.Login).To(Equal(staging + "/api/Users/login"))
		Expect(ep.Session.Get).To(Equal(staging + "/api/Session"))
	})

	It("strips a trailing slash from the base URL", func() {
		Expect(endpoints.New(staging + "/").Cart.Get).To(Equal(staging + "/api/Cart"))
	})

	It("stringifies parameters regardless of type", func() {
		ep := endpoints.New("")
		Expect(ep.Users.GetByID(123)).To(Equal(endpoints.DefaultBaseURL + "/api/Users/123"))
		Expect(ep.Users.GetByID("abc")).To(Equal(endpoints.DefaultBaseURL + "/api/Users/abc"))
	})

	It("keeps two-parameter ordering", func() {
		Expect(endpoints.New("").Reviews.GetByID(10, 5)).
			To(Equal(endpoints.DefaultBaseURL + "/api/products/10/Reviews/5"))
	})

	It("inserts coupon codes as path segments", func() {
		Expect(endpoints.New("").Coupons.Validate("CODE123")).
			To(Equal(endpoints.DefaultBaseURL + "/api/Coupons/validate/CODE123"))
	})

	It("percent-encodes reserved characters in parameters", func() {
		Expect(endpoints.New("").Coupons.Validate("10%/OFF")).
			To(Equal(endpoints.DefaultBaseURL + "/api/Coupons/validate/10%25%2FOFF"))
	})

	It("keeps path suffixes invariant across base URLs", func() {
		local := endpoints.New("")
		remote := endpoints.New(staging)

		localSuffix := strings.TrimPrefix(local.Orders.UpdateStatus(7), endpoints.DefaultBaseURL)
		remoteSuffix := strings.TrimPrefix(remote.Orders.UpdateStatus(7), staging)
		Expect(localSuffix).To(Equal(remoteSuffix))
	})

	DescribeTable("fixed-path operations",
		func(got, suffix string) {
			Expect(got).To(Equal(endpoints.DefaultBaseURL + "/api" + suffix))
		},
		Entry("users register", endpoints.New("").Users.Register, "/Users/register"),
		Entry("users logout", endpoints.New("").Users.Logout, "/Users/logout"),
		Entry("products list", endpoints.New("").Products.List, "/Products"),
		Entry("cart add item", endpoints.New("").Cart.AddItem, "/Cart/items"),
		Entry("cart checkout", endpoints.New("").Cart.Checkout, "/Cart/checkout"),
		Entry("cart apply coupon", endpoints.New("").Cart.ApplyCoupon, "/Cart/apply-coupon"),
		Entry("orders place", endpoints.New("").Orders.Place, "/Orders/place"),
		Entry("orders my orders", endpoints.New("").Orders.MyOrders, "/Orders/my-orders"),
		Entry("orders pending", endpoints.New("").Orders.Pending, "/Orders/pending"),
		Entry("profile", endpoints.New("").Profile.Get, "/users/profile"),
		Entry("profile change password", endpoints.New("").Profile.ChangePassword, "/users/profile/change-password"),
		Entry("profile addresses", endpoints.New("").Profile.Addresses.Add, "/users/profile/addresses"),
		Entry("wishlist move to cart", endpoints.New("").Wishlist.MoveToCart, "/Wishlist/move-to-cart"),
		Entry("wishlist count", endpoints.New("").Wishlist.Count, "/Wishlist/count"),
		Entry("payment methods", endpoints.New("").PaymentMethods.List, "/payment-methods"),
		Entry("payments process", endpoints.New("").Payments.Process, "/payments/process"),
		Entry("payments refund", endpoints.New("").Payments.Refund, "/payments/refund"),
		Entry("session", endpoints.New("").Session.Get, "/Session"),
	)

	DescribeTable("parameterized operations",
		func(got, suffix string) {
			Expect(got).To(Equal(endpoints.DefaultBaseURL + "/api" + suffix))
		},
		Entry("product availability", endpoints.New("").Products.Availability(4), "/Products/4/availability"),
		Entry("product stock", endpoints.New("").Products.Stock(4), "/Products/4/stock"),
		Entry("product stock increase", endpoints.New("").Products.IncreaseStock(4), "/Products/4/stock/increase"),
		Entry("product stock decrease", endpoints.New("").Products.DecreaseStock(4), "/Products/4/stock/decrease"),
		Entry("cart item update", endpoints.New("").Cart.UpdateItem(9), "/Cart/items/9"),
		Entry("order cancel", endpoints.New("").Orders.Cancel(3), "/Orders/3/cancel"),
		Entry("address set default", endpoints.New("").Profile.Addresses.SetDefault(2), "/users/profile/addresses/2/set-default"),
		Entry("review moderate", endpoints.New("").Reviews.Moderate(10, 5), "/products/10/Reviews/5/moderate"),
		Entry("my review", endpoints.New("").Reviews.MyReview(10), "/products/10/my-review"),
		Entry("review mark helpful", endpoints.New("").Reviews.MarkHelpful(5), "/reviews/5/helpful"),
		Entry("wishlist check item", endpoints.New("").Wishlist.CheckItem(8), "/Wishlist/check/8"),
		Entry("payment method set default", endpoints.New("").PaymentMethods.SetDefault(6), "/payment-methods/6/set-default"),
		Entry("payment transaction", endpoints.New("").Payments.GetTransaction(11), "/payments/transactions/11"),
		Entry("coupon usage", endpoints.New("").Coupons.Admin.Usage(12), "/Coupons/admin/coupons/12/usage"),
	)

	DescribeTable("admin sub-namespaces keep the admin segment",
		func(got string) {
			Expect(got).To(ContainSubstring("admin"))
		},
		Entry("users admin list", endpoints.New("").Users.Admin.Users),
		Entry("users admin reset password", endpoints.New("").Users.Admin.ResetPassword(1)),
		Entry("reviews admin list", endpoints.New("").Reviews.Admin.List),
		Entry("payments admin transactions", endpoints.New("").Payments.Admin.Transactions),
		Entry("payments admin statistics", endpoints.New("").Payments.Admin.Statistics),
		Entry("coupons admin list", endpoints.New("").Coupons.Admin.List),
		Entry("coupons admin usage", endpoints.New("").Coupons.Admin.Usage(1)),
	)
})
