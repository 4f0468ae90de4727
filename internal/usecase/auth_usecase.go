package usecase

import (
	"context"

	"dipto/internal/domain/entity"
)

// AuthUsecase defines the interface for authentication business operations.
// Credential verification is delegated to the hosted identity provider;
// this layer only resolves roles and mints session tokens.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	UpdateProfile(ctx context.Context, uid string, input *UpdateProfileInput) (*entity.Account, error)
}

// --- Input DTOs ---

// LoginInput defines the data required to sign in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// UpdateProfileInput defines the data required to update a profile.
// Image bytes, when present, are uploaded to blob storage first and the
// resulting URL stored as the photo URL.
type UpdateProfileInput struct {
	DisplayName      string `json:"display_name,omitempty"`
	ImageContentType string `json:"-"`
	ImageData        []byte `json:"-"`
}

// --- Output DTOs ---

// AuthOutput carries the session tokens and the signed-in account.
type AuthOutput struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Account      *entity.Account `json:"account"`
}
