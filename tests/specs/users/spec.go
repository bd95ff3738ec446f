package users

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
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

	AnonUserAPI  *lib.UserAPI      // /Users routes, unauthenticated
	AdminAPI     *lib.UserAdminAPI // admin routes, admin token
	UserAdminAPI *lib.UserAdminAPI // admin routes, regular-user token
	AnonAdminAPI *lib.UserAdminAPI // admin routes, no token
)

var _ = Describe("Users", func() {
	It("registers a fresh account", func() {
		body, _ := specs.RegisterRandomUser(AnonUserAPI)
		Expect(body.Map()).To(HaveKey("id"))
		Expect(body.Get("email").String()).To(ContainSubstring("@"))
	})

	It("rejects a duplicate registration", func() {
		_, payload := specs.RegisterRandomUser(AnonUserAPI)

		AnonUserAPI.Register(lib.Params{
			"expectStatus": tools.ExpectStatus("%d >= 400"),
		}, payload)
	})

	DescribeTable("registration payload validation",
		func(mutate func(map[string]interface{}), statusCondition string) {
			payload := fixtures.RandomUserCreatePayload()
			mutate(payload)

			AnonUserAPI.Register(lib.Params{
				"expectStatus": tools.ExpectStatus(statusCondition),
			}, payload)
		},
		Entry("well-formed payload is accepted",
			func(p map[string]interface{}) {}, "%d == 201"),
		Entry("missing email is rejected",
			func(p map[string]interface{}) { delete(p, "email") }, "%d >= 400"),
		Entry("malformed email is rejected",
			func(p map[string]interface{}) { p["email"] = "not-an-email" }, "%d >= 400"),
		Entry("short password is rejected",
			func(p map[string]interface{}) { p["password"] = "x" }, "%d >= 400"),
	)

	It("logs in and logs out", func() {
		_, payload := specs.RegisterRandomUser(AnonUserAPI)

		client := lib.NewShopClient(
			lib.Login(cfg, payload["email"].(string), payload["password"].(string)),
			cfg.RequestTimeout,
		)
		lib.NewUserAPI(client, registry).Logout(nil)
	})

	It("rejects a login with the wrong password", func() {
		_, payload := specs.RegisterRandomUser(AnonUserAPI)

		AnonUserAPI.Login(lib.Params{
			"expectStatus": tools.ExpectStatus("%d >= 400"),
		}, map[string]interface{}{
			"email":    payload["email"],
			"password": "definitely-wrong",
		})
	})

	Describe("admin management", func() {
		It("lists registered users", func() {
			created, _ := specs.RegisterRandomUser(AnonUserAPI)

			AdminAPI.List(lib.Params{
				"expectPayload": func(body gjson.Result) {
					ids := []interface{}{}
					for _, u := range body.Get("users").Array() {
						ids = append(ids, u.Get("id").Value())
					}
					Expect(ids).To(ContainElement(created.Get("id").Value()))
				},
			}, nil)
		})

		It("reads and updates one user", func() {
			created, _ := specs.RegisterRandomUser(AnonUserAPI)
			id := created.Get("id").Value()

			AdminAPI.Read(lib.Params{
				"user": id,
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("email").String()).To(Equal(created.Get("email").String()))
				},
			}, nil)

			AdminAPI.Update(lib.Params{"user": id}, nil, map[string]interface{}{
				"firstName": "Renamed",
			})
		})

		It("resets a user's password", func() {
			created, _ := specs.RegisterRandomUser(AnonUserAPI)

			AdminAPI.ResetPassword(created.Get("id").Value(), nil, map[string]interface{}{
				"newPassword": "Reset123!" + tools.RandomStr()[:8],
			})
		})
	})

	Describe("authorization tiers", func() {
		It("denies the admin listing to anonymous callers", func() {
			AnonAdminAPI.List(lib.Params{
				"expectStatus": tools.ExpectExactStatus(401),
			}, nil)
		})

		It("denies the admin listing to regular users", func() {
			UserAdminAPI.List(lib.Params{
				"expectStatus": tools.ExpectExactStatus(403),
			}, nil)
		})
	})
})
