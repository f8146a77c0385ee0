package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/config"
	"github.com/fritz-immanuel/luxtrack/internal/infra"
	"github.com/fritz-immanuel/luxtrack/internal/repository"
	"github.com/fritz-immanuel/luxtrack/internal/router"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

// @title        LuxTrack API
// @version      1.0
// @description  Inventory and sales tracking for luxury goods resale.
// @BasePath     /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		// Redis only backs the login rate limiter and health detail;
		// the API stays up without it.
		log.Warn().Err(err).Msg("redis unavailable, continuing without it")
		rdb = nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := infra.EnsureAdmin(ctx, repository.NewUserRepository(db), cfg); err != nil {
		log.Fatal().Err(err).Msg("seed admin user")
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router.New(cfg, db, rdb),
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
