package profile

import (
	"net/url"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib"
	"github.com/littlebugshop/e2e/tests/lib/configure"
	"github.com/littlebugshop/e2e/tests/lib/fixtures"
	"github.com/littlebugshop/e2e/tests/lib/tools"
	"github.com/littlebugshop/e2e/tests/specs"
)

var (
	cfg configure.Settings

	userPayload map[string]interface{}

	UserProfileAPI *lib.ProfileAPI
	UserAddressAPI *lib.AddressAPI
	AnonProfileAPI *lib.ProfileAPI
)

var _ = Describe("Profile", func() {
	It("returns the owner's data", func() {
		UserProfileAPI.Get(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("email").String()).To(Equal(userPayload["email"]))
			},
		})
	})

	It("updates profile fields", func() {
		UserProfileAPI.Update(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("firstName").String()).To(Equal("Updated"))
			},
		}, map[string]interface{}{"firstName": "Updated"})
	})

	It("changes the password and accepts the new one", func() {
		newPassword := "Np1!" + tools.RandomStr()[:16]

		UserProfileAPI.ChangePassword(nil, map[string]interface{}{
			"currentPassword": userPayload["password"],
			"newPassword":     newPassword,
		})
		userPayload["password"] = newPassword

		lib.Login(cfg, userPayload["email"].(string), newPassword)
	})

	It("rejects a password change with the wrong current password", func() {
		UserProfileAPI.ChangePassword(lib.Params{
			"expectStatus": tools.ExpectStatus("%d >= 400"),
		}, map[string]interface{}{
			"currentPassword": "wrong-password",
			"newPassword":     "Np1!" + tools.RandomStr()[:16],
		})
	})

	Describe("addresses", func() {
		It("adds an address to the book", func() {
			created := specs.CreateRandomAddress(UserAddressAPI)
			Expect(created.Map()).To(HaveKey("id"))
		})

		It("updates and deletes an address", func() {
			created := specs.CreateRandomAddress(UserAddressAPI)
			id := created.Get("id").Value()

			UserAddressAPI.Update(lib.Params{
				"address": id,
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("city").String()).To(Equal("Mothville"))
				},
			}, url.Values{}, map[string]interface{}{"city": "Mothville"})

			UserAddressAPI.Delete(lib.Params{"address": id}, nil)
		})

		It("marks an address as default", func() {
			created := specs.CreateRandomAddress(UserAddressAPI)

			UserAddressAPI.SetDefault(created.Get("id").Value(), lib.Params{
				"expectPayload": func(body gjson.Result) {
					Expect(body.Get("isDefault").Bool()).To(BeTrue())
				},
			})
		})

		It("rejects an address without a country", func() {
			payload := fixtures.RandomAddressCreatePayload()
			delete(payload, "country")

			UserAddressAPI.Create(lib.Params{
				"expectStatus": tools.ExpectStatus("%d >= 400"),
			}, url.Values{}, payload)
		})
	})

	It("requires authentication", func() {
		AnonProfileAPI.Get(lib.Params{
			"expectStatus": tools.ExpectExactStatus(401),
		})
	})
})
