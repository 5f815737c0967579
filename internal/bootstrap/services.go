package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/learnify/learnify-ui/config"
	"github.com/learnify/learnify-ui/internal/adapters/backend"
	"github.com/learnify/learnify-ui/internal/adapters/memory"
	redisstore "github.com/learnify/learnify-ui/internal/adapters/redis"
	httpx "github.com/learnify/learnify-ui/internal/http"
	"github.com/learnify/learnify-ui/internal/i18n"
	"github.com/learnify/learnify-ui/internal/observability/metrics"
	"github.com/learnify/learnify-ui/internal/ports"
	"github.com/learnify/learnify-ui/internal/service"
)

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient // required when a redis store is selected
	Logger      *slog.Logger
	// Registry overrides the Prometheus registry (tests).
	Registry *prometheus.Registry
}

// ServiceContainer holds everything the HTTP layer is built from.
type ServiceContainer struct {
	Landing       *service.LandingService
	Flash         ports.FlashStore
	Guard         ports.LogoutGuard
	Catalog       *i18n.Catalog
	LogoutLimiter *httpx.RateLimiter
	Metrics       http.Handler // nil when metrics are disabled
	Health        *httpx.HealthHandler
}

// Close stops background work owned by the container.
func (s ServiceContainer) Close() {
	if s.LogoutLimiter != nil {
		s.LogoutLimiter.Stop()
	}
}

// NewServices wires adapters and services from configuration.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service config is required")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.NeedsRedis() && deps.RedisClient == nil {
		return ServiceContainer{}, errors.New("redis client is required for the configured stores")
	}

	client, err := backend.NewClient(backend.Config{
		BaseURL:          cfg.Backend.BaseURL,
		Timeout:          cfg.Backend.Timeout,
		MaxResponseBytes: cfg.Backend.MaxResponseBytes,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create backend client: %w", err)
	}

	catalog, err := i18n.New(cfg.UI.DefaultLocale)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("load translations: %w", err)
	}

	recorder, metricsHandler := buildMetrics(cfg.Observability.Metrics, deps.Registry)
	flash := newFlashStore(cfg, deps.RedisClient)
	guard := newLogoutGuard(cfg, deps.RedisClient)

	landing := service.NewLandingService(service.LandingServiceOptions{
		Backend: client,
		Guard:   guard,
		Observability: service.LandingObservability{
			Logger:  logger,
			Metrics: recorder,
		},
	})

	limiter := httpx.NewRateLimiter(httpx.RateLimiterConfig{
		Rate:              cfg.Logout.Limit(),
		Burst:             cfg.Logout.Burst,
		TrustForwardedFor: cfg.HTTP.TrustProxy,
		Logger:            logger,
	})

	logger.Info("services initialised",
		"flash_store", string(cfg.Flash.Store),
		"logout_guard", string(cfg.Logout.Guard),
		"metrics", metricsHandler != nil,
		"default_locale", cfg.UI.DefaultLocale,
	)

	return ServiceContainer{
		Landing:       landing,
		Flash:         flash,
		Guard:         guard,
		Catalog:       catalog,
		LogoutLimiter: limiter,
		Metrics:       metricsHandler,
		Health:        buildHealth(deps.RedisClient),
	}, nil
}

// buildMetrics returns a Nop recorder and no handler when metrics are disabled.
//
//nolint:ireturn // the recorder is either a Prometheus collector or a no-op.
func buildMetrics(cfg config.ObservabilityMetricsConfig, reg *prometheus.Registry) (metrics.Recorder, http.Handler) {
	if !cfg.Enabled {
		return metrics.Nop{}, nil
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return metrics.NewCollector(reg), metrics.Handler(reg)
}

//nolint:ireturn // selects the store implementation from config.
func newFlashStore(cfg *config.AppConfig, client redis.UniversalClient) ports.FlashStore {
	if cfg.Flash.Store == config.StoreRedis {
		return redisstore.NewFlashStore(client, redisstore.FlashStoreOptions{
			Prefix: cfg.Redis.KeyPrefix,
			TTL:    cfg.Flash.TTL,
		})
	}
	return memory.NewFlashStore(cfg.Flash.TTL)
}

//nolint:ireturn // selects the guard implementation from config.
func newLogoutGuard(cfg *config.AppConfig, client redis.UniversalClient) ports.LogoutGuard {
	if cfg.Logout.Guard == config.StoreRedis {
		return redisstore.NewLogoutGuard(client, cfg.Redis.KeyPrefix, cfg.Logout.GuardTTL)
	}
	return memory.NewLogoutGuard(cfg.Logout.GuardTTL)
}

func buildHealth(client redis.UniversalClient) *httpx.HealthHandler {
	h := &httpx.HealthHandler{}
	if client != nil {
		h.Checks = map[string]httpx.HealthCheck{
			"redis": func(ctx context.Context) error { return client.Ping(ctx).Err() },
		}
	}
	return h
}
