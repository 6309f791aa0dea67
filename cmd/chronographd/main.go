package main

import (
	"context"
	"log/slog"
	"os"

	"chronograph/internal/config"
	"chronograph/internal/domain"
	"chronograph/internal/handler"
	"chronograph/internal/server"
	"chronograph/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	chrono := service.New(domain.RealClock{})
	h := handler.New(chrono, cfg.Location())

	srv := server.New(server.Config{
		Port:            cfg.Port,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, h, logger)

	slog.Info("starting chronograph server", "port", cfg.Port, "timezone", cfg.Timezone)

	if err := srv.Run(context.Background()); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
