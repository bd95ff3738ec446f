// Package configure is the only place the suite reads the environment.
// Everything downstream receives explicit values.
package configure

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Settings describe one target deployment of LittleBugShop. Defaults match
// the local docker-compose stack and its seeded admin account.
type Settings struct {
	BaseURL string `envconfig:"BASE_URL"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@littlebugshop.test"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"Admin123!"`

	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
}

// Load resolves Settings from the environment. An empty BASE_URL is kept
// as-is; the endpoint registry substitutes its documented default.
func Load() (Settings, error) {
	var s Settings
	err := envconfig.Process("", &s)
	return s, err
}

// MustLoad is Load for suite entrypoints, where a broken environment should
// abort the run immediately.
func MustLoad() Settings {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}
