package service

import (
	"context"
	"testing"
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/apierror"
	"github.com/fritz-immanuel/luxtrack/internal/config"
	"github.com/fritz-immanuel/luxtrack/internal/dto"
	"github.com/fritz-immanuel/luxtrack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                "test-secret",
		AccessTokenExpireMinutes: 30,
		RefreshTokenExpireDays:   7,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{
		Email:    "staff@luxtrack.com",
		Password: "secret123",
		FullName: "Staff Member",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStaff, user.Role, "role defaults to staff")
	assert.True(t, user.IsActive)

	stored, err := repo.FindByEmail(ctx, "staff@luxtrack.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash, "password must be hashed at rest")

	tokens, err := svc.Login(ctx, dto.LoginRequest{Email: "staff@luxtrack.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", tokens.TokenType)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, user.ID, tokens.User.ID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Email: "staff@luxtrack.com", Password: "secret123", FullName: "Staff Member",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "staff@luxtrack.com", Password: "wrong"})
	require.ErrorIs(t, err, apierror.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", err.Error())

	// Unknown email produces the same message so callers cannot probe
	// which addresses exist.
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nobody@luxtrack.com", Password: "secret123"})
	require.ErrorIs(t, err, apierror.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Email: "staff@luxtrack.com", Password: "secret123", FullName: "First",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{
		Email: "staff@luxtrack.com", Password: "other456", FullName: "Second",
	})
	require.ErrorIs(t, err, apierror.ErrConflict)
	assert.Equal(t, "Email already registered", err.Error())
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Email: "staff@luxtrack.com", Password: "secret123", FullName: "Staff Member",
	})
	require.NoError(t, err)
	tokens, err := svc.Login(ctx, dto.LoginRequest{Email: "staff@luxtrack.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, tokens.RefreshToken)
	require.ErrorIs(t, err, apierror.ErrUnauthorized, "refresh token must not authenticate requests")

	_, err = svc.Refresh(ctx, tokens.AccessToken)
	require.ErrorIs(t, err, apierror.ErrUnauthorized, "access token must not mint new pairs")

	refreshed, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	user, err := svc.Authenticate(ctx, refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "staff@luxtrack.com", user.Email)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{
		Email: "staff@luxtrack.com", Password: "secret123", FullName: "Staff Member",
	})
	require.NoError(t, err)

	expired, err := svc.(*authService).generateToken(user.ID, tokenTypeAccess, -1)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, expired)
	require.ErrorIs(t, err, apierror.ErrUnauthorized)
	assert.Equal(t, "Token expired", err.Error())
}

func TestAuthenticateGarbageToken(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), testConfig())

	_, err := svc.Authenticate(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, apierror.ErrUnauthorized)
	assert.Equal(t, "Invalid token", err.Error())
}

func TestAuthenticateDeletedUser(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, testConfig())

	token, err := svc.(*authService).generateToken("ghost-id", tokenTypeAccess, 30*time.Minute)
	require.NoError(t, err)
	_, err = svc.Authenticate(context.Background(), token)
	require.ErrorIs(t, err, apierror.ErrUnauthorized)
	assert.Equal(t, "User not found", err.Error())
}
