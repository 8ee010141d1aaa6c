package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ObiBat/craefto-automation/internal/app"
	"github.com/ObiBat/craefto-automation/internal/config"
	"github.com/ObiBat/craefto-automation/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("application init failed", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped with error", "error", err)
		os.Exit(1)
	}
}
