// Package identity implements the delegated credential store on top of
// Firebase Authentication. Passwords never touch this service: sign-in
// goes through the Identity Toolkit REST API and account management
// through the Admin SDK.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register file:// bucket driver
	_ "gocloud.dev/blob/gcsblob"  // register gs:// bucket driver
	_ "gocloud.dev/blob/memblob"  // register mem:// bucket driver
	"google.golang.org/api/option"

	"dipto/config"
	domainerrors "dipto/internal/domain/errors"
	"dipto/internal/domain/service"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

type firebaseProvider struct {
	client     *fbauth.Client
	apiKey     string
	httpClient *http.Client
	bucket     *blob.Bucket
	logger     *slog.Logger
}

// Params holds dependencies for the identity provider, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseProvider creates an IdentityProvider backed by Firebase
// Authentication and an optional blob bucket for profile images.
func NewFirebaseProvider(params Params) (service.IdentityProvider, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase configuration is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("firebase web API key is required for password sign-in")
	}

	opts := make([]option.ClientOption, 0, 1)
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	provider := &firebaseProvider{
		client:     client,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     params.Logger,
	}

	if storage := params.Config.Storage; storage != nil && storage.BucketURL != "" {
		bucket, err := blob.OpenBucket(params.Ctx, storage.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", storage.BucketURL)
		}
		provider.bucket = bucket

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return bucket.Close()
			},
		})
	}

	return provider, nil
}

// signInResponse is the Identity Toolkit password sign-in payload.
type signInResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// signInError is the Identity Toolkit error envelope.
type signInError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn verifies an email/password pair through the Identity Toolkit
// REST API and returns the full account record.
func (p *firebaseProvider) SignIn(ctx context.Context, email, password string) (*service.Identity, error) {
	body, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr signInError
		if err := json.Unmarshal(payload, &apiErr); err == nil && isCredentialError(apiErr.Error.Message) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Errorf("identity toolkit sign-in failed: status %d", resp.StatusCode)
	}

	var result signInResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, errors.WithStack(err)
	}

	return p.identityByUID(ctx, result.LocalID)
}

// SignUp registers a new email/password account through the Admin SDK.
func (p *firebaseProvider) SignUp(ctx context.Context, email, password string) (*service.Identity, error) {
	user := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password)

	record, err := p.client.CreateUser(ctx, user)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	p.logger.Info("Registered new account",
		slog.String("uid", record.UID),
	)

	return identityFromRecord(record), nil
}

// SetProfile updates the display name and photo URL of an account.
func (p *firebaseProvider) SetProfile(ctx context.Context, uid, displayName, photoURL string) (*service.Identity, error) {
	update := &fbauth.UserToUpdate{}
	if displayName != "" {
		update = update.DisplayName(displayName)
	}
	if photoURL != "" {
		update = update.PhotoURL(photoURL)
	}

	record, err := p.client.UpdateUser(ctx, uid, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return identityFromRecord(record), nil
}

// UploadProfileImage stores image bytes in the configured bucket and
// returns a URL for the object.
func (p *firebaseProvider) UploadProfileImage(ctx context.Context, uid string, contentType string, data []byte) (string, error) {
	if p.bucket == nil {
		return "", errors.New("no storage bucket configured")
	}

	key := fmt.Sprintf("profiles/%s/%d%s", uid, time.Now().UnixNano(), extensionFor(contentType))
	if err := p.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	// Not every bucket driver can sign URLs (file:// cannot); fall
	// back to the object key and let the frontend resolve it.
	signed, err := p.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: 7 * 24 * time.Hour})
	if err != nil {
		return key, nil
	}

	return signed, nil
}

// identityByUID loads the full account record for a UID.
func (p *firebaseProvider) identityByUID(ctx context.Context, uid string) (*service.Identity, error) {
	record, err := p.client.GetUser(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return identityFromRecord(record), nil
}

func identityFromRecord(record *fbauth.UserRecord) *service.Identity {
	return &service.Identity{
		UID:           record.UID,
		Email:         record.Email,
		DisplayName:   record.DisplayName,
		PhotoURL:      record.PhotoURL,
		EmailVerified: record.EmailVerified,
	}
}

// isCredentialError reports whether an Identity Toolkit error message
// means the email/password pair was wrong rather than a system fault.
func isCredentialError(message string) bool {
	switch {
	case strings.HasPrefix(message, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(message, "INVALID_PASSWORD"),
		strings.HasPrefix(message, "INVALID_LOGIN_CREDENTIALS"),
		strings.HasPrefix(message, "USER_DISABLED"):
		return true
	default:
		return false
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
