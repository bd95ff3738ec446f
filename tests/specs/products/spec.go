package products

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
	AdminAPI *lib.ProductAPI // admin token
	UserAPI  *lib.ProductAPI // regular-user token
	AnonAPI  *lib.ProductAPI // no token
)

var _ = Describe("Products", func() {
	It("can be created by an admin", func() {
		createPayload := fixtures.RandomProductCreatePayload()

		AdminAPI.Create(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Map()).To(HaveKey("id"))
				Expect(body.Get("name").String()).To(Equal(createPayload["name"]))
				Expect(body.Get("price").Float()).To(Equal(createPayload["price"]))
			},
		}, url.Values{}, createPayload)
	})

	DescribeTable("create payload validation",
		func(mutate func(map[string]interface{}), statusCondition string) {
			payload := fixtures.RandomProductCreatePayload()
			mutate(payload)

			AdminAPI.Create(lib.Params{
				"expectStatus": tools.ExpectStatus(statusCondition),
			}, url.Values{}, payload)
		},
		Entry("missing name is rejected",
			func(p map[string]interface{}) { delete(p, "name") }, "%d >= 400"),
		Entry("negative price is rejected",
			func(p map[string]interface{}) { p["price"] = -1.5 }, "%d >= 400"),
		Entry("negative stock is rejected",
			func(p map[string]interface{}) { p["stock"] = -3 }, "%d >= 400"),
	)

	It("can be read anonymously", func() {
		created := specs.CreateRandomProduct(AdminAPI)

		AnonAPI.Read(lib.Params{
			"product": created.Get("id").Value(),
			"expectPayload": func(body gjson.Result) {
				specs.IsSubsetExceptKeys(created, body)
			},
		}, nil)
	})

	It("appears in the public listing", func() {
		created := specs.CreateRandomProduct(AdminAPI)

		AnonAPI.List(lib.Params{
			"expectPayload": func(body gjson.Result) {
				names := []interface{}{}
				for _, p := range body.Get("products").Array() {
					names = append(names, p.Get("name").Value())
				}
				Expect(names).To(ContainElement(created.Get("name").Value()))
			},
		}, nil)
	})

	It("can be updated and deleted by an admin", func() {
		created := specs.CreateRandomProduct(AdminAPI)
		id := created.Get("id").Value()

		AdminAPI.Update(lib.Params{
			"product": id,
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("price").Float()).To(Equal(99.99))
			},
		}, nil, map[string]interface{}{"price": 99.99})

		AdminAPI.Delete(lib.Params{"product": id}, nil)

		AnonAPI.Read(lib.Params{
			"product":      id,
			"expectStatus": tools.ExpectExactStatus(404),
		}, nil)
	})

	Describe("stock", func() {
		It("reports availability and stock level", func() {
			created := specs.CreateRandomProduct(AdminAPI)
			id := created.Get("id").Value()

			AnonAPI.Availability(id, lib.Params{
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("available").Bool()).To(BeTrue())
				},
			})

			AdminAPI.Stock(id, lib.Params{
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("stock").Int()).To(BeNumerically(">", 0))
				},
			})
		})

		It("increases and decreases stock", func() {
			created := specs.CreateRandomProduct(AdminAPI)
			id := created.Get("id").Value()
			initial := created.Get("stock").Int()

			AdminAPI.IncreaseStock(id, lib.Params{}, map[string]interface{}{"quantity": 5})
			AdminAPI.DecreaseStock(id, lib.Params{}, map[string]interface{}{"quantity": 2})

			AdminAPI.Stock(id, lib.Params{
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("stock").Int()).To(Equal(initial + 3))
				},
			})
		})
	})

	Describe("authorization tiers", func() {
		It("denies creation to anonymous callers", func() {
			AnonAPI.Create(lib.Params{
				"expectStatus": tools.ExpectExactStatus(401),
			}, url.Values{}, fixtures.RandomProductCreatePayload())
		})

		It("denies creation to regular users", func() {
			UserAPI.Create(lib.Params{
				"expectStatus": tools.ExpectExactStatus(403),
			}, url.Values{}, fixtures.RandomProductCreatePayload())
		})

		It("denies deletion to regular users", func() {
			created := specs.CreateRandomProduct(AdminAPI)

			UserAPI.Delete(lib.Params{
				"product":      created.Get("id").Value(),
				"expectStatus": tools.ExpectExactStatus(403),
			}, nil)
		})
	})
})
