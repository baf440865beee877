package main

import (
	"context"
	"log"
	"os"

	"github.com/sourcecodehub/hub-backend/config"
	"github.com/sourcecodehub/hub-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := bootstrap.Serve(context.Background(), cfg, logger); err != nil {
		logger.Error("server stopped with error")
		os.Exit(1)
	}
}
