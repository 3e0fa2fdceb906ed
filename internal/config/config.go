package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds service configuration loaded from the environment.
type Config struct {
	Port         string `env:"PORT" envDefault:"3333"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"daily-diet.db"`
	// Default to secure cookies; disable only for local development.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"true"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
