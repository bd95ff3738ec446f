package reviews

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

	UserReviewAPI  *lib.ReviewAPI
	AdminReviewAPI *lib.ReviewAPI
	AnonReviewAPI  *lib.ReviewAPI
)

var _ = Describe("Reviews", func() {
	var productID interface{}

	BeforeEach(func() {
		productID = specs.CreateRandomProduct(AdminProductAPI).Get("id").Value()
	})

	It("can be written by a signed-in user", func() {
		review := specs.CreateRandomReview(UserReviewAPI, productID)
		Expect(review.Map()).To(HaveKey("id"))
		Expect(review.Get("rating").Int()).To(BeNumerically(">=", 1))
	})

	It("shows up in the product's public listing", func() {
		review := specs.CreateRandomReview(UserReviewAPI, productID)

		AnonReviewAPI.List(productID, lib.Params{
			"expectPayload": func(body gjson.Result) {
				ids := []interface{}{}
				for _, r := range body.Get("reviews").Array() {
					ids = append(ids, r.Get("id").Value())
				}
				Expect(ids).To(ContainElement(review.Get("id").Value()))
			},
		})
	})

	It("is readable by product and review id", func() {
		review := specs.CreateRandomReview(UserReviewAPI, productID)

		AnonReviewAPI.GetByID(productID, review.Get("id").Value(), lib.Params{
			"expectPayload": func(body gjson.Result) {
				specs.IsSubsetExceptKeys(review, body, "helpfulCount")
			},
		})
	})

	It("returns the caller's own review under my-review", func() {
		review := specs.CreateRandomReview(UserReviewAPI, productID)

		UserReviewAPI.MyReview(productID, lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("id").Value()).To(Equal(review.Get("id").Value()))
			},
		})
	})

	It("rejects a second review for the same product", func() {
		specs.CreateRandomReview(UserReviewAPI, productID)

		UserReviewAPI.Create(productID, lib.Params{
			"expectStatus": tools.ExpectStatus("%d >= 400"),
		}, fixtures.RandomReviewCreatePayload())
	})

	It("counts helpful votes", func() {
		review := specs.CreateRandomReview(UserReviewAPI, productID)

		AdminReviewAPI.MarkHelpful(review.Get("id").Value(), lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("helpfulCount").Int()).To(BeNumerically(">=", 1))
			},
		})
	})

	It("can be deleted by its author", func() {
		review := specs.CreateRandomReview(UserReviewAPI, productID)
		id := review.Get("id").Value()

		UserReviewAPI.Delete(productID, id, nil)

		AnonReviewAPI.GetByID(productID, id, lib.Params{
			"expectStatus": tools.ExpectExactStatus(404),
		})
	})

	Describe("moderation", func() {
		It("lets an admin moderate a review", func() {
			review := specs.CreateRandomReview(UserReviewAPI, productID)

			AdminReviewAPI.Moderate(productID, review.Get("id").Value(), lib.Params{
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("status").String()).To(Equal("approved"))
				},
			}, map[string]interface{}{"status": "approved"})
		})

		It("denies moderation to regular users", func() {
			review := specs.CreateRandomReview(UserReviewAPI, productID)

			UserReviewAPI.Moderate(productID, review.Get("id").Value(), lib.Params{
				"expectStatus": tools.ExpectExactStatus(403),
			}, map[string]interface{}{"status": "approved"})
		})

		It("lists all reviews for admins only", func() {
			specs.CreateRandomReview(UserReviewAPI, productID)

			AdminReviewAPI.AdminList(lib.Params{
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("reviews").Array()).ToNot(BeEmpty())
				},
			})

			UserReviewAPI.AdminList(lib.Params{
				"expectStatus": tools.ExpectExactStatus(403),
			})
		})
	})

	It("requires authentication to write", func() {
		AnonReviewAPI.Create(productID, lib.Params{
			"expectStatus": tools.ExpectExactStatus(401),
		}, fixtures.RandomReviewCreatePayload())
	})
})
