package lib

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/littlebugshop/e2e/tests/lib/configure"
	"github.com/littlebugshop/e2e/tests/lib/endpoints"
)

var requestLog = hclog.New(&hclog.LoggerOptions{
	Name:  "littlebugshop-e2e",
	Level: hclog.Info,
})

type authHeadersTransport struct {
	headers map[string]string
	wrap    http.RoundTripper
}

func (t *authHeadersTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for key, val := range t.headers {
		req.Header.Set(key, val)
	}

	requestLog.Info("request", "method", req.Method, "url", req.URL.String())
	By(req.Method + " " + req.URL.String())

	return t.wrap.RoundTrip(req)
}

// NewShopClient builds an *http.Client speaking JSON to the shop backend.
// An empty token produces an unauthenticated client.
func NewShopClient(token string, timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout: 10 * time.Second,
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}

	if len(token) > 0 {
		headers["Authorization"] = "Bearer " + token
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &authHeadersTransport{
			headers: headers,
			wrap: &http.Transport{
				IdleConnTimeout:       5 * time.Minute,
				TLSHandshakeTimeout:   5 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				DialContext:           dialer.DialContext,
			},
		},
	}
}

func NewAnonymousClient(s configure.Settings) *http.Client {
	return NewShopClient("", s.RequestTimeout)
}

// Login authenticates against the shop and returns the issued bearer token.
func Login(s configure.Settings, email, password string) string {
	ep := endpoints.New(s.BaseURL)

	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	Expect(err).ToNot(HaveOccurred())

	resp, err := NewAnonymousClient(s).Post(ep.Users.Login, "application/json", bytes.NewReader(payload))
	Expect(err).ToNot(HaveOccurred())
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	Expect(err).ToNot(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(200), "login failed for %s: %s", email, string(body))

	token := gjson.ParseBytes(body).Get("token").String()
	Expect(token).ToNot(BeEmpty(), "no token in login response: %s", string(body))

	return token
}

func NewAdminClient(s configure.Settings) *http.Client {
	return NewShopClient(Login(s, s.AdminEmail, s.AdminPassword), s.RequestTimeout)
}

// RegisterUser creates an account for the given registration payload and
// returns an authenticated client for it. The payload must carry "email"
// and "password" keys, as fixtures.RandomUserCreatePayload does.
func RegisterUser(s configure.Settings, payload map[string]interface{}) *http.Client {
	ep := endpoints.New(s.BaseURL)

	body, err := json.Marshal(payload)
	Expect(err).ToNot(HaveOccurred())

	resp, err := NewAnonymousClient(s).Post(ep.Users.Register, "application/json", bytes.NewReader(body))
	Expect(err).ToNot(HaveOccurred())
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	Expect(err).ToNot(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(201), "registration failed: %s", string(data))

	return NewShopClient(Login(s, payload["email"].(string), payload["password"].(string)), s.RequestTimeout)
}
