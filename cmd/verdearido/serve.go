package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vbonduro/verdearido/internal/config"
	"github.com/vbonduro/verdearido/internal/logging"
	"github.com/vbonduro/verdearido/internal/metrics"
	"github.com/vbonduro/verdearido/internal/partners"
	"github.com/vbonduro/verdearido/internal/registry"
	"github.com/vbonduro/verdearido/internal/service"
	"github.com/vbonduro/verdearido/internal/store"
	"github.com/vbonduro/verdearido/internal/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the farm management HTTP API. Configuration comes from the
environment, after the dotenv file named by VERDE_ENV_FILE is applied.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer cleanup()

	dir, err := partners.Load()
	if err != nil {
		logger.Error("failed to load partner directory", "error", err)
		return err
	}

	opts := web.Options{
		LookupRate:  cfg.LookupRate,
		LookupBurst: cfg.LookupBurst,
	}
	var recorder metrics.Recorder = metrics.Discard{}
	if cfg.MetricsEnabled {
		opts.Metrics = metrics.New()
		recorder = opts.Metrics
	}

	svc := service.NewFarmService(
		store.New(),
		registry.NewSimulated(cfg.LookupDelay, cfg.LookupTimeout),
		dir,
		recorder,
		logger,
	)
	server := web.NewServer(svc, opts, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx, cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
		return err
	}
	return nil
}
