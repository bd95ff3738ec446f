package users

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

func Test_usersAPI(t *testing.T) {
	if os.Getenv("BASE_URL") == "" {
		t.Skip("BASE_URL is not set, skipping live-backend suite")
	}

	RegisterFailHandler(Fail)

	cfg = configure.MustLoad()
	registry = endpoints.New(cfg.BaseURL)

	anonymous := lib.NewAnonymousClient(cfg)
	admin := lib.NewAdminClient(cfg)
	regular := lib.RegisterUser(cfg, fixtures.RandomUserCreatePayload())

	AnonUserAPI = lib.NewUserAPI(anonymous, registry)
	AdminAPI = lib.NewUserAdminAPI(admin, registry)
	UserAdminAPI = lib.NewUserAdminAPI(regular, registry)
	AnonAdminAPI = lib.NewUserAdminAPI(anonymous, registry)

	RunSpecs(t, "API: Users")
}
