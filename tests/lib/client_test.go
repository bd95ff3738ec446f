package lib_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/littlebugshop/e2e/tests/lib"
)

func TestClient(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "HTTP client wrapper")
}

var _ = Describe("NewShopClient", func() {
	var (
		seen   http.Header
		server *httptest.Server
	)

	BeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r.Header.Clone()
			w.WriteHeader(http.StatusOK)
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	It("sends JSON content negotiation headers", func() {
		client := lib.NewShopClient("", 5*time.Second)

		resp, err := client.Get(server.URL)
		Expect(err).ToNot(HaveOccurred())
		resp.Body.Close()

		Expect(seen.Get("Content-Type")).To(Equal("application/json"))
		Expect(seen.Get("Accept")).To(Equal("application/json"))
		Expect(seen.Get("Authorization")).To(BeEmpty())
	})

	It("attaches the bearer token when given one", func() {
		client := lib.NewShopClient("secret-token", 5*time.Second)

		resp, err := client.Get(server.URL)
		Expect(err).ToNot(HaveOccurred())
		resp.Body.Close()

		Expect(seen.Get("Authorization")).To(Equal("Bearer secret-token"))
	})
})
