package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/learnify/learnify-ui/config"
	"github.com/learnify/learnify-ui/internal/bootstrap"
)

const defaultHealthcheckTimeout = 3 * time.Second

func newRootCmd(logger *slog.Logger) *cobra.Command {
	serve := newServeCmd(logger)

	root := &cobra.Command{
		Use:           "learnify",
		Short:         "Learnify landing page server",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the binary without a subcommand serves the site.
		RunE: serve.RunE,
	}
	root.AddCommand(serve, newHealthcheckCmd())
	return root
}

func newServeCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}
			logger = bootstrap.NewLogger(os.Stdout, cfg.LogLevel)
			logStartupInfo(cmd.Context(), logger, &cfg)
			return bootstrap.Serve(cmd.Context(), &cfg, logger)
		},
	}
}

func newHealthcheckCmd() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Probe /healthz of a running server and exit non-zero when unhealthy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = os.Getenv("HTTP_ADDR")
			}
			if addr == "" {
				addr = ":8080"
			}
			return bootstrap.CheckHealth(cmd.Context(), addr, timeout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "server address (defaults to HTTP_ADDR or :8080)")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultHealthcheckTimeout, "request timeout")
	return cmd
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting learnify landing service",
		"addr", cfg.HTTP.Addr,
		"backend", cfg.Backend.BaseURL,
		"dev", cfg.IsDev,
		"flash_store", string(cfg.Flash.Store),
		"logout_guard", string(cfg.Logout.Guard),
		"metrics", cfg.Observability.Metrics.Enabled,
	)
}
