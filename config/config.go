package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - backend.go: Course marketplace backend client configuration
//   - http.go: HTTP server configuration
//   - session.go: Session marker, flash and logout guard configuration
//   - redis.go: Redis connection configuration
//   - observability.go: Metrics configuration
//   - ui.go: Landing page content and locale configuration
type AppConfig struct {
	// IsDev controls development mode behavior (template reloading, verbose errors).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// LogLevel is the minimum slog level (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	HTTP    HTTPConfig
	Backend BackendConfig `envPrefix:"BACKEND_"`
	Session SessionConfig
	Flash   FlashConfig  `envPrefix:"FLASH_"`
	Logout  LogoutConfig `envPrefix:"LOGOUT_"`
	Redis   RedisConfig  `envPrefix:"REDIS_"`

	Observability ObservabilityConfig
	UI            UIConfig `envPrefix:"UI_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Backend.Sanitize()
	c.Session.Sanitize()
	c.Flash.Sanitize()
	c.Logout.Sanitize()
	c.Observability.Sanitize()
	c.UI.Sanitize()

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.detectDevMode()
}

// Validate reports configuration that cannot be repaired by Sanitize.
func (c *AppConfig) Validate() error {
	if c == nil {
		return errors.New("config is required")
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid BACKEND_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid BACKEND_URL %q: scheme must be http or https", c.Backend.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid BACKEND_URL %q: host is required", c.Backend.BaseURL)
	}
	if c.Flash.Store == StoreRedis || c.Logout.Guard == StoreRedis {
		if strings.TrimSpace(c.Redis.URI) == "" {
			return errors.New("REDIS_URI is required when a redis-backed store is selected")
		}
	}
	return nil
}

// NeedsRedis reports whether any component is configured to use Redis.
func (c *AppConfig) NeedsRedis() bool {
	return c.Flash.Store == StoreRedis || c.Logout.Guard == StoreRedis
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
