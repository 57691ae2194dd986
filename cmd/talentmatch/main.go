package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kaede/talent-match-go/internal/app"
	"github.com/kaede/talent-match-go/internal/config"
	"github.com/kaede/talent-match-go/internal/util"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger. The terminal belongs to the UI, so logs go to the
	// configured file only.
	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Talent Match client starting...",
		zap.String("gateway", cfg.Gateway.BaseURL),
		zap.String("log_level", cfg.Logging.Level),
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.Build(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer container.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	program := container.NewProgram(ctx)
	if _, err := program.Run(); err != nil {
		logger.Error("UI terminated with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Shutdown complete")
}
