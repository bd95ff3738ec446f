package session

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib"
	"github.com/littlebugshop/e2e/tests/lib/tools"
)

var (
	userEmail string

	AdminSessionAPI *lib.SessionAPI
	UserSessionAPI  *lib.SessionAPI
	AnonSessionAPI  *lib.SessionAPI
)

var _ = Describe("Session", func() {
	It("identifies an admin session", func() {
		AdminSessionAPI.Get(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("authenticated").Bool()).To(BeTrue())
				Expect(body.Get("role").String()).To(Equal("admin"))
			},
		})
	})

	It("identifies a regular-user session", func() {
		UserSessionAPI.Get(lib.Params{
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("authenticated").Bool()).To(BeTrue())
				Expect(body.Get("role").String()).To(Equal("customer"))
				Expect(body.Get("email").String()).To(Equal(userEmail))
			},
		})
	})

	It("reports anonymous callers as unauthenticated", func() {
		AnonSessionAPI.Get(lib.Params{
			"expectStatus": tools.ExpectExactStatus(200),
			"expectPayload": func(body gjson.Result) {
				Expect(body.Get("authenticated").Bool()).To(BeFalse())
			},
		})
	})
})
