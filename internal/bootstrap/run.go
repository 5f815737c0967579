package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnify/learnify-ui/config"
)

// Serve connects infrastructure, starts the HTTP server and blocks until
// SIGINT/SIGTERM, ctx cancellation or a server failure.
func Serve(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	var redisClient redis.UniversalClient
	if cfg.NeedsRedis() {
		client, err := ConnectRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		redisClient = client
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	services, err := NewServices(&ServiceDeps{Config: cfg, RedisClient: redisClient, Logger: logger})
	if err != nil {
		return err
	}
	defer services.Close()

	server, errCh := StartHTTPServer(&HTTPServerConfig{Config: cfg, Services: services, Logger: logger})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return waitForShutdown(ctx, shutdownConfig{
		server:  server,
		errCh:   errCh,
		timeout: cfg.HTTP.ShutdownTimeout,
		logger:  logger,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	server  *http.Server
	errCh   <-chan error
	timeout time.Duration
	logger  *slog.Logger
}

// waitForShutdown waits for a shutdown signal or a server error.
func waitForShutdown(ctx context.Context, cfg shutdownConfig) error {
	select {
	case <-ctx.Done():
		cfg.logger.Info("shutting down services...")
		return ShutdownHTTPServer(ShutdownConfig{
			Context: context.WithoutCancel(ctx),
			Server:  cfg.server,
			Timeout: cfg.timeout,
			Logger:  cfg.logger,
		})
	case err, ok := <-cfg.errCh:
		if !ok {
			return nil
		}
		cfg.logger.Error("service error", "error", err)
		return err
	}
}

// CheckHealth probes /healthz on a running instance.
func CheckHealth(ctx context.Context, addr string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+hostPort(addr)+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
