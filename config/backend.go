package config

import (
	"strings"
	"time"
)

// BackendConfig contains settings for the course marketplace REST backend.
type BackendConfig struct {
	// BaseURL is the backend root, e.g. "https://api.learnify.example/api/v1".
	// Course and logout endpoints are resolved relative to it.
	BaseURL string `env:"URL" envDefault:"http://localhost:4001/api/v1"`

	// Timeout bounds each outbound backend call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// MaxResponseBytes caps how much of a backend response body is read.
	MaxResponseBytes int64 `env:"MAX_RESPONSE_BYTES" envDefault:"1048576"`
}

// Sanitize normalises the base URL and clamps limits.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	if b.Timeout <= 0 {
		b.Timeout = 10 * time.Second
	}
	if b.MaxResponseBytes <= 0 {
		b.MaxResponseBytes = 1 << 20
	}
}
