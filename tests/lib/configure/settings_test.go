package configure_test

import (
	"os"
	"testing"
	"time"

	"github.com/littlebugshop/e2e/tests/lib/configure"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent for the
	// defaults to kick in.
	for _, key := range []string{"BASE_URL", "ADMIN_EMAIL", "ADMIN_PASSWORD", "REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	s, err := configure.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty (registry supplies the default)", s.BaseURL)
	}
	if s.AdminEmail != "admin@littlebugshop.test" {
		t.Errorf("AdminEmail = %q", s.AdminEmail)
	}
	if s.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v", s.RequestTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BASE_URL", "https://staging.littlebugshop.test")
	t.Setenv("REQUEST_TIMEOUT", "90s")

	s, err := configure.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.BaseURL != "https://staging.littlebugshop.test" {
		t.Errorf("BaseURL = %q", s.BaseURL)
	}
	if s.RequestTimeout != 90*time.Second {
		t.Errorf("RequestTimeout = %v", s.RequestTimeout)
	}
}
