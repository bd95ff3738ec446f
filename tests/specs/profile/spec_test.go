package profile

import (
	"os"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/littlebugshop/e2e/tests/lib"
	"github.com/littlebugshop/e2e/tests/lib/configure"
	"github.com/littlebugshop/e2e/tests/lib/endpoints"
	"github.com/littlebugshop/e2e/tests/lib/fixtures"
)

func Test_profileAPI(t *testing.T) {
	if os.Getenv("BASE_URL") == "" {
		t.Skip("BASE_URL is not set, skipping live-backend suite")
	}

	RegisterFailHandler(Fail)

	cfg = configure.MustLoad()
	registry := endpoints.New(cfg.BaseURL)

	userPayload = fixtures.RandomUserCreatePayload()
	user := lib.RegisterUser(cfg, userPayload)

	UserProfileAPI = lib.NewProfileAPI(user, registry)
	UserAddressAPI = lib.NewAddressAPI(user, registry)
	AnonProfileAPI = lib.NewProfileAPI(lib.NewAnonymousClient(cfg), registry)

	RunSpecs(t, "API: Profile")
}
