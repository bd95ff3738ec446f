package wishlist

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib"
	"github.com/littlebugshop/e2e/tests/lib/tools"
	"github.com/littlebugshop/e2e/tests/specs"
)

var (
	AdminProductAPI *lib.ProductAPI

	UserWishlistAPI *lib.WishlistAPI
	UserCartAPI     *lib.CartAPI
	AnonWishlistAPI *lib.WishlistAPI
)

func addRandomProduct() interface{} {
	id := specs.CreateRandomProduct(AdminProductAPI).Get("id").Value()
	UserWishlistAPI.AddItem(id, nil)
	return id
}

var _ = Describe("Wishlist", func() {
	BeforeEach(func() {
		UserWishlistAPI.Clear(lib.Params{
			"expectStatus": tools.ExpectStatus("%d < 500"),
		})
	})

	It("stores an item", func() {
		id := addRandomProduct()

		UserWishlistAPI.Get(lib.Params{
			"expectPayload": func(body gjson.Result) {
				ids := []interface{}{}
				for _, item := range body.Get("items").Array() {
					ids = append(ids, item.Get("productId").Value())
				}
				Expect(ids).To(ContainElement(id))
			},
		})
	})

	It("answers membership checks", func() {
		id := addRandomProduct()

		UserWishlistAPI.CheckItem(id, lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("inWishlist").Bool()).To(BeTrue())
			},
		})

		other := specs.CreateRandomProduct(AdminProductAPI).Get("id").Value()
		UserWishlistAPI.CheckItem(other, lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("inWishlist").Bool()).To(BeFalse())
			},
		})
	})

	It("counts items", func() {
		addRandomProduct()
		addRandomProduct()

		UserWishlistAPI.Count(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("count").Int()).To(Equal(int64(2)))
			},
		})
	})

	It("removes an item", func() {
		id := addRandomProduct()

		UserWishlistAPI.RemoveItem(id, nil)

		UserWishlistAPI.CheckItem(id, lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("inWishlist").Bool()).To(BeFalse())
			},
		})
	})

	It("rejects the same product twice", func() {
		id := addRandomProduct()

		UserWishlistAPI.AddItem(id, lib.Params{
			"expectStatus": tools.ExpectStatus("%d >= 400"),
		})
	})

	It("moves everything into the cart", func() {
		addRandomProduct()

		UserWishlistAPI.MoveToCart(nil, nil)

		UserCartAPI.Get(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("items").Array()).ToNot(BeEmpty())
			},
		})

		UserWishlistAPI.Count(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("count").Int()).To(Equal(int64(0)))
			},
		})
	})

	It("requires authentication", func() {
		AnonWishlistAPI.Get(lib.Params{
			"expectStatus": tools.ExpectExactStatus(401),
		})
	})
})
