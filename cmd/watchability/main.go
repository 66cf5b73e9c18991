package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"nhl-watchability-service/internal/app"
	"nhl-watchability-service/internal/config"
	"nhl-watchability-service/internal/logging"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nhl-watchability-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := app.New(cfg, logger)
	if err := runner.Run(ctx); err != nil {
		logging.Error(logger, "run aborted", err)
		os.Exit(1)
	}
}
