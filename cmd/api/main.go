package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stockpulse-app/stockpulse-backend/api/routes"
	"github.com/stockpulse-app/stockpulse-backend/internal/inventory"
	"github.com/stockpulse-app/stockpulse-backend/internal/session"
	"github.com/stockpulse-app/stockpulse-backend/pkg/config"
	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
	"github.com/stockpulse-app/stockpulse-backend/pkg/env"
	"github.com/stockpulse-app/stockpulse-backend/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	state := inventory.NewState()
	if cfg.Session.SeedFixtures {
		state = inventory.NewSeededState()
	}

	sess := session.New(session.Options{
		DefaultRole:    enums.Role(cfg.Session.DefaultRole),
		LogoutRole:     enums.Role(cfg.Session.LogoutRole),
		State:          state,
		MinQueryLength: cfg.Search.MinQueryLength,
	})

	registry := prometheus.NewRegistry()

	addr := ":" + env.Get("PORT", cfg.App.Port)

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":          cfg.App.Env,
		"addr":         addr,
		"default_role": cfg.Session.DefaultRole,
		"seeded":       cfg.Session.SeedFixtures,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, sess, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
