package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dipto/config"
	"dipto/internal/domain/entity"
	domainerrors "dipto/internal/domain/errors"
	"dipto/internal/domain/repository"
	"dipto/internal/infra/auth"
	"dipto/internal/infra/persistence/memory"
	"dipto/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	provider     *fakeIdentityProvider
	activityRepo repository.ActivityRepository
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	cfg := newTestConfig()
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	provider := newFakeIdentityProvider()
	activityRepo := memory.NewActivityRepository(200)

	return authServiceFixtures{
		service:      NewAuthService(cfg, provider, tokenService, activityRepo, newTestLogger()),
		provider:     provider,
		activityRepo: activityRepo,
	}
}

func TestAuthService_Register_ThenLogin(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName:        "Guest User",
		Email:           "guest@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, entity.Roles{entity.RoleCustomer}, out.Account.Roles)
	assert.Equal(t, "Guest User", out.Account.DisplayName)
	assert.Contains(t, out.Account.PhotoURL, "ui-avatars.com")

	login, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "guest@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, out.Account.UID, login.Account.UID)
}

func TestAuthService_Register_PasswordMismatchShortCircuits(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		FullName:        "Guest User",
		Email:           "guest@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret124",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)

	// The provider must never be contacted on a mismatch
	assert.Empty(t, fx.provider.accounts)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		FullName:        "Guest User",
		Email:           "guest@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
	_, err := fx.service.Register(ctx, input)
	require.NoError(t, err)

	_, err = fx.service.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName:        "Guest User",
		Email:           "guest@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "guest@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_AdminRoleResolvedFromConfig(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName:        "Guest User",
		Email:           "admin@dipto.example",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)
	assert.True(t, out.Account.Roles.Contains(entity.RoleAdmin))

	// Admin sign-in lands in the activity log
	before, err := fx.activityRepo.FindAll(ctx)
	require.NoError(t, err)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "admin@dipto.example",
		Password: "secret123",
	})
	require.NoError(t, err)

	after, err := fx.activityRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "Successful Login", after[0].Action)
	assert.Equal(t, entity.ActivitySecurity, after[0].Category)
}

func TestAuthService_Login_CustomerLoginNotLogged(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName:        "Guest User",
		Email:           "guest@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)

	before, err := fx.activityRepo.FindAll(ctx)
	require.NoError(t, err)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "guest@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	after, err := fx.activityRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestAuthService_UpdateProfile_WithImage(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName:        "Guest User",
		Email:           "guest@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)

	account, err := fx.service.UpdateProfile(ctx, out.Account.UID, &usecase.UpdateProfileInput{
		DisplayName:      "Guest One",
		ImageContentType: "image/png",
		ImageData:        []byte{0x89, 0x50, 0x4E, 0x47},
	})
	require.NoError(t, err)
	assert.Equal(t, "Guest One", account.DisplayName)
	assert.Contains(t, account.PhotoURL, out.Account.UID)
}

func TestNewAuthService_NoAdminEmailsConfigured(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{}
	cfg.SecretKey.Access = "a"
	cfg.SecretKey.Refresh = "r"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	service := NewAuthService(cfg, newFakeIdentityProvider(), tokenService, memory.NewActivityRepository(200), newTestLogger())

	out, err := service.Register(context.Background(), &usecase.RegisterInput{
		FullName:        "Guest User",
		Email:           "someone@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)
	assert.False(t, out.Account.Roles.Contains(entity.RoleAdmin))
}
