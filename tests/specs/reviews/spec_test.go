package reviews

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

func Test_reviewsAPI(t *testing.T) {
	if os.Getenv("BASE_URL") == "" {
		t.Skip("BASE_URL is not set, skipping live-backend suite")
	}

	RegisterFailHandler(Fail)

	cfg := configure.MustLoad()
	registry := endpoints.New(cfg.BaseURL)

	admin := lib.NewAdminClient(cfg)
	user := lib.RegisterUser(cfg, fixtures.RandomUserCreatePayload())

	AdminProductAPI = lib.NewProductAPI(admin, registry)
	UserReviewAPI = lib.NewReviewAPI(user, registry)
	AdminReviewAPI = lib.NewReviewAPI(admin, registry)
	AnonReviewAPI = lib.NewReviewAPI(lib.NewAnonymousClient(cfg), registry)

	RunSpecs(t, "API: Reviews")
}
