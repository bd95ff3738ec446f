package coupons

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

func Test_couponsAPI(t *testing.T) {
	if os.Getenv("BASE_URL") == "" {
		t.Skip("BASE_URL is not set, skipping live-backend suite")
	}

	RegisterFailHandler(Fail)

	cfg := configure.MustLoad()
	registry := endpoints.New(cfg.BaseURL)

	admin := lib.NewAdminClient(cfg)
	user := lib.RegisterUser(cfg, fixtures.RandomUserCreatePayload())

	AdminAPI = lib.NewCouponAdminAPI(admin, registry)
	UserAdminAPI = lib.NewCouponAdminAPI(user, registry)
	UserCouponAPI = lib.NewCouponAPI(user, registry)
	AnonCouponAPI = lib.NewCouponAPI(lib.NewAnonymousClient(cfg), registry)

	RunSpecs(t, "API: Coupons")
}
