// Command seedadmin creates the bootstrap admin account out of band, for
// deployments that prefer not to seed on server start.
package main

import (
	"context"

	"github.com/fritz-immanuel/luxtrack/internal/config"
	"github.com/fritz-immanuel/luxtrack/internal/infra"
	"github.com/fritz-immanuel/luxtrack/internal/repository"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := infra.EnsureAdmin(context.Background(), repository.NewUserRepository(db), cfg); err != nil {
		log.Fatal().Err(err).Msg("seed admin user")
	}
	log.Info().Str("email", cfg.AdminEmail).Msg("admin account ensured")
}
