package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnify/learnify-ui/config"
	"github.com/learnify/learnify-ui/internal/adapters/memory"
	redisstore "github.com/learnify/learnify-ui/internal/adapters/redis"
	"github.com/learnify/learnify-ui/internal/testutil"
)

func testConfig(backendURL string) *config.AppConfig {
	cfg := &config.AppConfig{
		Backend: config.BackendConfig{BaseURL: backendURL},
		Observability: config.ObservabilityConfig{
			Metrics: config.ObservabilityMetricsConfig{Enabled: true},
		},
	}
	cfg.Sanitize()
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewServices_MemoryStores(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	services, err := NewServices(&ServiceDeps{
		Config:   testConfig(fb.BaseURL()),
		Logger:   discardLogger(),
		Registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	t.Cleanup(services.Close)

	assert.NotNil(t, services.Landing)
	assert.NotNil(t, services.Catalog)
	assert.NotNil(t, services.LogoutLimiter)
	assert.NotNil(t, services.Metrics)
	assert.IsType(t, &memory.FlashStore{}, services.Flash)
	assert.IsType(t, &memory.LogoutGuard{}, services.Guard)
	assert.Empty(t, services.Health.Checks)
}

func TestNewServices_MetricsDisabled(t *testing.T) {
	cfg := testConfig("http://localhost:4001/api/v1")
	cfg.Observability.Metrics.Enabled = false

	services, err := NewServices(&ServiceDeps{Config: cfg, Logger: discardLogger()})
	require.NoError(t, err)
	t.Cleanup(services.Close)
	assert.Nil(t, services.Metrics)
}

func TestNewServices_RedisRequired(t *testing.T) {
	cfg := testConfig("http://localhost:4001/api/v1")
	cfg.Flash.Store = config.StoreRedis

	_, err := NewServices(&ServiceDeps{Config: cfg, Logger: discardLogger()})
	require.Error(t, err)

	_, err = NewServices(nil)
	require.Error(t, err)
}

func TestNewServices_RedisStores(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	cfg := testConfig("http://localhost:4001/api/v1")
	cfg.Flash.Store = config.StoreRedis
	cfg.Logout.Guard = config.StoreRedis

	services, err := NewServices(&ServiceDeps{
		Config:      cfg,
		RedisClient: client,
		Logger:      discardLogger(),
		Registry:    prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	t.Cleanup(services.Close)

	assert.IsType(t, &redisstore.FlashStore{}, services.Flash)
	assert.IsType(t, &redisstore.LogoutGuard{}, services.Guard)
	require.Contains(t, services.Health.Checks, "redis")
	assert.NoError(t, services.Health.Checks["redis"](context.Background()))
}

func TestBuildHTTPHandler_EndToEnd(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.JSON("/course/courses", http.StatusOK, `{"courses":[{"_id":"c1","title":"Go Basics"}]}`)

	cfg := testConfig(fb.BaseURL())
	services, err := NewServices(&ServiceDeps{Config: cfg, Logger: discardLogger(), Registry: prometheus.NewRegistry()})
	require.NoError(t, err)
	t.Cleanup(services.Close)

	srv := httptest.NewServer(BuildHTTPHandler(cfg, services, discardLogger()))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	require.NoError(t, CheckHealth(context.Background(), srv.Listener.Addr().String(), time.Second))

	resp, err = http.Get(srv.URL + "/")
	require.NoError(t, err)
	page, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(page), `data-course-id="c1"`)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "learnify_course_fetch_total")
}

func TestCheckHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	addr := srv.Listener.Addr().String()

	err := CheckHealth(context.Background(), addr, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")

	srv.Close()
	assert.Error(t, CheckHealth(context.Background(), addr, 200*time.Millisecond))
}

func TestHostPort(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", hostPort(":8080"))
	assert.Equal(t, "127.0.0.1:8080", hostPort("0.0.0.0:8080"))
	assert.Equal(t, "10.1.2.3:9000", hostPort("10.1.2.3:9000"))
	assert.Equal(t, "garbage", hostPort("garbage"))
}

func TestShutdownHTTPServer_NilServer(t *testing.T) {
	assert.NoError(t, ShutdownHTTPServer(ShutdownConfig{}))
}

func TestWaitForShutdown(t *testing.T) {
	t.Run("context cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := waitForShutdown(ctx, shutdownConfig{server: &http.Server{}, logger: discardLogger()})
		assert.NoError(t, err)
	})

	t.Run("server error", func(t *testing.T) {
		errCh := make(chan error, 1)
		errCh <- assert.AnError
		err := waitForShutdown(context.Background(), shutdownConfig{errCh: errCh, logger: discardLogger()})
		assert.ErrorIs(t, err, assert.AnError)
	})
}
