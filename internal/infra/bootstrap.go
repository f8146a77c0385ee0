package infra

import (
	"context"
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/config"
	"github.com/fritz-immanuel/luxtrack/internal/model"
	"github.com/fritz-immanuel/luxtrack/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin seeds the first admin account, idempotently: it does nothing
// when any admin already exists. There is no built-in default password:
// if ADMIN_PASSWORD is unset the seed is skipped with a warning and an
// operator must run cmd/seedadmin instead.
func EnsureAdmin(ctx context.Context, users repository.UserRepository, cfg *config.Config) error {
	count, err := users.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.AdminPassword == "" {
		log.Warn().Msg("no admin account exists and ADMIN_PASSWORD is unset; use cmd/seedadmin to provision one")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 12)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	admin := &model.User{
		ID:           uuid.NewString(),
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		FullName:     "System Administrator",
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Info().Str("email", cfg.AdminEmail).Msg("seeded initial admin account")
	return nil
}
