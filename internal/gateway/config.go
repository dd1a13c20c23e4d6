package gateway

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the backend connection settings.
type Config struct {
	// BaseURL is the PrepNova API root. Defaults to a local backend.
	BaseURL string `env:"PREPNOVA_API_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds each informational call before it degrades to the
	// substitute payload.
	Timeout time.Duration `env:"PREPNOVA_API_TIMEOUT" envDefault:"8s"`
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse gateway env: %w", err)
	}
	return cfg, nil
}
