package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"dipto/config"
	"dipto/internal/domain/entity"
	domainerrors "dipto/internal/domain/errors"
	"dipto/internal/domain/repository"
	"dipto/internal/domain/service"
	"dipto/internal/usecase"
)

// authService implements the AuthUsecase interface. Credential checks
// are delegated to the identity provider; this layer resolves roles
// from configuration and mints session tokens.
type authService struct {
	provider     service.IdentityProvider
	tokenService service.TokenService
	activityRepo repository.ActivityRepository
	adminEmails  map[string]struct{}
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	cfg *config.Config,
	provider service.IdentityProvider,
	tokenService service.TokenService,
	activityRepo repository.ActivityRepository,
	logger *slog.Logger,
) usecase.AuthUsecase {
	adminEmails := make(map[string]struct{})
	if cfg.Auth != nil {
		for _, email := range cfg.Auth.AdminEmails {
			adminEmails[strings.ToLower(email)] = struct{}{}
		}
	}

	return &authService{
		provider:     provider,
		tokenService: tokenService,
		activityRepo: activityRepo,
		adminEmails:  adminEmails,
		logger:       logger,
	}
}

// Login verifies credentials against the identity provider and issues
// session tokens.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	identity, err := srv.provider.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to sign in")
	}

	account := srv.account(identity)

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account.UID, account.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.logger.Info("Account signed in", "uid", account.UID)

	// Only administrator sign-ins land in the dashboard activity log.
	if account.Roles.Contains(entity.RoleAdmin) {
		if err := srv.activityRepo.Append(ctx, &entity.ActivityEntry{
			Action:    "Successful Login",
			Actor:     actorName(account),
			Category:  entity.ActivitySecurity,
			CreatedAt: time.Now(),
		}); err != nil {
			srv.logger.Warn("Failed to record login", "error", err)
		}
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// Register creates an account at the identity provider and signs the
// new user in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	// Password confirmation is checked before the provider is contacted.
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}

	identity, err := srv.provider.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, domainerrors.ErrAuthFailed.WrapMessage("sign-up failed")
	}

	// New accounts get a generated avatar until a real photo is uploaded.
	identity, err = srv.provider.SetProfile(ctx, identity.UID, input.FullName, fallbackAvatarURL(input.FullName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to set initial profile")
	}

	account := srv.account(identity)

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account.UID, account.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.logger.Info("Account registered", "uid", account.UID)

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// UpdateProfile updates the display name and, when image bytes are
// supplied, uploads them and stores the resulting photo URL.
func (srv *authService) UpdateProfile(ctx context.Context, uid string, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	photoURL := ""
	if len(input.ImageData) > 0 {
		url, err := srv.provider.UploadProfileImage(ctx, uid, input.ImageContentType, input.ImageData)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload profile image")
		}
		photoURL = url
	}

	identity, err := srv.provider.SetProfile(ctx, uid, input.DisplayName, photoURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return srv.account(identity), nil
}

// account projects a provider identity onto a local account with
// resolved roles. Every account is a customer; configured emails also
// carry the admin role.
func (srv *authService) account(identity *service.Identity) *entity.Account {
	roles := entity.Roles{entity.RoleCustomer}
	if _, ok := srv.adminEmails[strings.ToLower(identity.Email)]; ok {
		roles = append(roles, entity.RoleAdmin)
	}

	return &entity.Account{
		UID:         identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
		Roles:       roles,
	}
}

func fallbackAvatarURL(fullName string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(fullName) + "&background=f97316&color=fff"
}

func actorName(account *entity.Account) string {
	if account.DisplayName != "" {
		return account.DisplayName
	}

	return account.Email
}
