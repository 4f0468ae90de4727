package service

import (
	"context"
)

// Identity represents a verified account at the external identity provider.
type Identity struct {
	UID           string // Provider-assigned user ID
	Email         string // Account email address
	DisplayName   string // Display name, may be empty for fresh sign-ups
	PhotoURL      string // URL to the profile picture, may be empty
	EmailVerified bool   // Whether the provider has verified the email
}

// IdentityProvider defines the interface for the delegated credential
// store. All password handling lives behind it; the domain never sees
// or stores raw credentials.
type IdentityProvider interface {
	// SignIn verifies an email/password pair and returns the identity.
	SignIn(ctx context.Context, email, password string) (*Identity, error)

	// SignUp registers a new email/password account and returns the identity.
	SignUp(ctx context.Context, email, password string) (*Identity, error)

	// SetProfile updates the display name and photo URL of an account.
	SetProfile(ctx context.Context, uid, displayName, photoURL string) (*Identity, error)

	// UploadProfileImage stores raw image bytes and returns a public URL.
	UploadProfileImage(ctx context.Context, uid string, contentType string, data []byte) (string, error)
}
