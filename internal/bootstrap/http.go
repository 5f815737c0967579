package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/learnify/learnify-ui/config"
	httpx "github.com/learnify/learnify-ui/internal/http"
)

const defaultIdleTimeout = 120 * time.Second

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Listen errors are sent on the returned channel; it is closed when the server stops.
func StartHTTPServer(cfg *HTTPServerConfig) (*http.Server, <-chan error) {
	if cfg == nil {
		return nil, nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	handler := BuildHTTPHandler(appCfg, cfg.Services, logger)
	return startServer(logger, handler, appCfg.HTTP)
}

// BuildHTTPHandler assembles the router and wraps it as Recover -> Logging -> Router.
func BuildHTTPHandler(cfg *config.AppConfig, services ServiceContainer, logger *slog.Logger) http.Handler {
	var landing httpx.LandingPageService
	if services.Landing != nil {
		landing = services.Landing
	}

	router := httpx.NewRouter(httpx.RouterServices{
		Landing: landing,
		Flash:   services.Flash,
		Catalog: services.Catalog,
		Site: httpx.SiteOptions{
			Brand:         cfg.UI.BrandName,
			VideoURL:      cfg.UI.VideoURL,
			CopyrightYear: cfg.UI.CopyrightYear,
		},
		MarkerCookie:  cfg.Session.MarkerCookie,
		CookieDomain:  cfg.HTTP.CookieDomain,
		FlashTTL:      cfg.Flash.TTL,
		LogoutLimiter: services.LogoutLimiter,
		Metrics:       services.Metrics,
		MetricsPath:   cfg.Observability.Metrics.Path,
		Health:        services.Health,
		IsDev:         cfg.IsDev,
		Logger:        logger,
	})

	h := httpx.Logging(logger)(router)
	h = httpx.Recover(logger)(h)
	return h
}

func startServer(logger *slog.Logger, handler http.Handler, cfg config.HTTPConfig) (*http.Server, <-chan error) {
	// Guard against empty addr to avoid listening on Go default
	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			errCh <- err
		}
	}()

	return server, errCh
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	Timeout time.Duration
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}
	return nil
}

// hostPort turns a listen address into something a local client can dial.
func hostPort(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}
