package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/autoyard/inventory-system/internal/api"
	"github.com/autoyard/inventory-system/internal/infrastructure/config"
	mongodb "github.com/autoyard/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/autoyard/inventory-system/internal/infrastructure/db/redis"
	"github.com/autoyard/inventory-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	}).With().Str("service", "inventory-api").Str("env", cfg.Env).Logger()

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---- MongoDB ----
	client, db, err := mongodb.Connect(rootCtx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()
	log.Info().Msg("mongo connected")

	if err := mongodb.EnsureIndexes(rootCtx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	// ---- Redis ----
	rdb, err := redisdb.Connect(rootCtx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()
	log.Info().Msg("redis connected")

	// ---- Seed data (first admin + sample catalog) ----
	if err := mongodb.Seed(rootCtx,
		mongodb.NewUserRepository(db),
		mongodb.NewVehicleRepository(db),
		cfg.AdminUsername, cfg.AdminPassword, log,
	); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	// ---- HTTP server ----
	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-rootCtx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
