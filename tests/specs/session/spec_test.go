package session

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

func Test_sessionAPI(t *testing.T) {
	if os.Getenv("BASE_URL") == "" {
		t.Skip("BASE_URL is not set, skipping live-backend suite")
	}

	RegisterFailHandler(Fail)

	cfg := configure.MustLoad()
	registry := endpoints.New(cfg.BaseURL)

	userPayload := fixtures.RandomUserCreatePayload()
	userEmail = userPayload["email"].(string)

	AdminSessionAPI = lib.NewSessionAPI(lib.NewAdminClient(cfg), registry)
	UserSessionAPI = lib.NewSessionAPI(lib.RegisterUser(cfg, userPayload), registry)
	AnonSessionAPI = lib.NewSessionAPI(lib.NewAnonymousClient(cfg), registry)

	RunSpecs(t, "API: Session")
}
