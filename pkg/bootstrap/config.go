package bootstrap

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds the bootstrap client configuration. StaticOverride is only
// honored when both of its fields are non-empty; it exists for environments
// without a reachable token server.
type Config struct {
	BaseURL        string
	StaticOverride *ConnectionDetails
}

type envConfig struct {
	BaseURL     string `env:"TOKEN_SERVER_URL" envDefault:"http://localhost:3000"`
	StaticURL   string `env:"LIVEKIT_STATIC_URL"`
	StaticToken string `env:"LIVEKIT_STATIC_TOKEN"`
}

// ConfigFromEnv builds a Config from environment variables.
func ConfigFromEnv() (Config, error) {
	raw := envConfig{}
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse bootstrap env config: %w", err)
	}

	cfg := Config{BaseURL: raw.BaseURL}
	if raw.StaticURL != "" || raw.StaticToken != "" {
		cfg.StaticOverride = &ConnectionDetails{
			URL:   raw.StaticURL,
			Token: raw.StaticToken,
		}
	}
	return cfg, nil
}
