package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"greeting-server/core/config"
	"greeting-server/core/logger"
	"greeting-server/core/server"
	"greeting-server/core/tracing"
	"greeting-server/feature/greeting"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runServer(cmd *cobra.Command, args []string) error {
	// 1. Resolve the port before anything else so a bad argument never opens a socket
	port, err := server.ParsePort(args)
	if err != nil {
		return err
	}

	// 2. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Port = port
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = logFormat
	}

	// 3. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Initialize Tracing (noop unless enabled)
	tp, shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logg.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	// 5. Build the server with the fully initialized configuration
	srv, err := server.New(cfg.Server, logg, tp, greeting.NewFeature(cfg.Server.Port, logg))
	if err != nil {
		return err
	}

	// 6. Serve until SIGINT/SIGTERM
	if err := srv.Start(ctx); err != nil {
		return err
	}
	logg.Info("Server stopped")
	return nil
}
