package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "http://localhost:4001/api/v1", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "user", cfg.Session.MarkerCookie)
	assert.Equal(t, StoreMemory, cfg.Flash.Store)
	assert.Equal(t, StoreMemory, cfg.Logout.Guard)
	assert.Equal(t, "Learnify", cfg.UI.BrandName)
	assert.Equal(t, "/metrics", cfg.Observability.Metrics.Path)
	assert.False(t, cfg.NeedsRedis())
	require.NoError(t, cfg.Validate())
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.example.com/api/v1/")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("SESSION_MARKER_COOKIE", "learner")
	t.Setenv("FLASH_STORE", "REDIS")
	t.Setenv("LOGOUT_GUARD", "redis")
	t.Setenv("LOGOUT_RATE_PER_MINUTE", "12")
	t.Setenv("REDIS_URI", "redis:6379")
	t.Setenv("UI_BRAND_NAME", "  Acme Academy ")
	t.Setenv("OBSERVABILITY_METRICS_PATH", "prom")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "https://api.example.com/api/v1", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "learner", cfg.Session.MarkerCookie)
	assert.Equal(t, StoreRedis, cfg.Flash.Store)
	assert.Equal(t, StoreRedis, cfg.Logout.Guard)
	assert.InDelta(t, 0.2, float64(cfg.Logout.Limit()), 1e-9)
	assert.Equal(t, "Acme Academy", cfg.UI.BrandName)
	assert.Equal(t, "/prom", cfg.Observability.Metrics.Path)
	assert.True(t, cfg.NeedsRedis())
	require.NoError(t, cfg.Validate())
}

func TestAppConfig_InvalidStoreKind(t *testing.T) {
	t.Setenv("FLASH_STORE", "disk")

	var cfg AppConfig
	err := env.Parse(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid store kind")
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{
			name:    "relative backend url",
			mutate:  func(c *AppConfig) { c.Backend.BaseURL = "/api" },
			wantErr: "scheme must be http or https",
		},
		{
			name:    "missing host",
			mutate:  func(c *AppConfig) { c.Backend.BaseURL = "https://" },
			wantErr: "host is required",
		},
		{
			name: "redis store without uri",
			mutate: func(c *AppConfig) {
				c.Flash.Store = StoreRedis
				c.Redis.URI = " "
			},
			wantErr: "REDIS_URI is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg AppConfig
			require.NoError(t, env.Parse(&cfg))
			cfg.Sanitize()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSanitize_Clamps(t *testing.T) {
	cfg := AppConfig{
		Session: SessionConfig{MarkerCookie: "   "},
		Logout:  LogoutConfig{RatePerMinute: -4, Burst: 0},
		Backend: BackendConfig{BaseURL: " http://backend/ "},
	}
	cfg.Sanitize()

	assert.Equal(t, "user", cfg.Session.MarkerCookie)
	assert.Equal(t, 1, cfg.Logout.RatePerMinute)
	assert.Equal(t, 1, cfg.Logout.Burst)
	assert.Equal(t, 15*time.Second, cfg.Logout.GuardTTL)
	assert.Equal(t, "http://backend", cfg.Backend.BaseURL)
	assert.Equal(t, int64(1<<20), cfg.Backend.MaxResponseBytes)
}
