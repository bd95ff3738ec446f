package fixtures_test

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/littlebugshop/e2e/tests/lib/fixtures"
)

func TestFixtures(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Fixtures")
}

var validate = validator.New()

// roundtrip pushes a factory payload back through the wire schema so the
// validator can check what would actually be sent.
func roundtrip(payload map[string]interface{}, target interface{}) {
	bytes, err := json.Marshal(payload)
	Expect(err).ToNot(HaveOccurred())
	Expect(json.Unmarshal(bytes, target)).To(Succeed())
}

var _ = Describe("factories", func() {
	It("produce valid user registrations", func() {
		var u fixtures.User
		roundtrip(fixtures.RandomUserCreatePayload(), &u)
		Expect(validate.Struct(u)).To(Succeed())
	})

	It("produce unique user emails", func() {
		first := fixtures.RandomUserCreatePayload()
		second := fixtures.RandomUserCreatePayload()
		Expect(first["email"]).ToNot(Equal(second["email"]))
	})

	It("produce valid products", func() {
		var p fixtures.Product
		roundtrip(fixtures.RandomProductCreatePayload(), &p)
		Expect(validate.Struct(p)).To(Succeed())
	})

	It("produce valid addresses", func() {
		var a fixtures.Address
		roundtrip(fixtures.RandomAddressCreatePayload(), &a)
		Expect(validate.Struct(a)).To(Succeed())
	})

	It("produce valid reviews", func() {
		var r fixtures.Review
		roundtrip(fixtures.RandomReviewCreatePayload(), &r)
		Expect(validate.Struct(r)).To(Succeed())
	})

	It("produce valid coupons with fresh codes", func() {
		var c fixtures.Coupon
		payload := fixtures.RandomCouponCreatePayload()
		roundtrip(payload, &c)
		Expect(validate.Struct(c)).To(Succeed())
		Expect(payload["code"]).To(HavePrefix("E2E-"))
	})

	It("produce valid payment methods", func() {
		var m fixtures.PaymentMethod
		roundtrip(fixtures.RandomPaymentMethodCreatePayload(), &m)
		Expect(validate.Struct(m)).To(Succeed())
	})

	It("produce cart items for the requested product", func() {
		payload := fixtures.CartItemPayload(42)
		Expect(payload["productId"]).To(BeEquivalentTo(42))
		Expect(payload["quantity"]).To(BeNumerically(">=", 1))
	})
})

var _ = Describe("static sample sets", func() {
	It("all pass the wire schema", func() {
		for _, u := range fixtures.Users() {
			Expect(validate.Struct(u)).To(Succeed())
		}
		for _, p := range fixtures.Products() {
			Expect(validate.Struct(p)).To(Succeed())
		}
		for _, a := range fixtures.Addresses() {
			Expect(validate.Struct(a)).To(Succeed())
		}
		for _, r := range fixtures.Reviews() {
			Expect(validate.Struct(r)).To(Succeed())
		}
		for _, c := range fixtures.Coupons() {
			Expect(validate.Struct(c)).To(Succeed())
		}
		for _, m := range fixtures.PaymentMethods() {
			Expect(validate.Struct(m)).To(Succeed())
		}
	})
})
