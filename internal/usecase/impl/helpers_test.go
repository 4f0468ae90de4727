package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"dipto/config"
	domainerrors "dipto/internal/domain/errors"
	"dipto/internal/domain/service"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Pricing = &config.PricingConfig{TaxRate: 0.10, DeliveryFee: 5.00}
	cfg.Checkout = &config.CheckoutConfig{ProcessingDelay: 10 * time.Millisecond}
	cfg.Auth = &config.AuthConfig{AdminEmails: []string{"admin@dipto.example"}}

	return cfg
}

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []*service.OrderPlacedEvent
}

func (p *capturingPublisher) PublishOrderPlaced(_ context.Context, event *service.OrderPlacedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func (p *capturingPublisher) published() []*service.OrderPlacedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.OrderPlacedEvent(nil), p.events...)
}

// fakeIdentityProvider is an in-memory stand-in for Firebase.
type fakeIdentityProvider struct {
	mu       sync.Mutex
	accounts map[string]fakeAccount // Keyed by email.
	signIns  int
}

type fakeAccount struct {
	uid      string
	password string
	name     string
	photoURL string
}

func newFakeIdentityProvider() *fakeIdentityProvider {
	return &fakeIdentityProvider{accounts: make(map[string]fakeAccount)}
}

func (p *fakeIdentityProvider) SignIn(_ context.Context, email, password string) (*service.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.signIns++

	account, ok := p.accounts[email]
	if !ok || account.password != password {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return &service.Identity{UID: account.uid, Email: email, DisplayName: account.name, PhotoURL: account.photoURL}, nil
}

func (p *fakeIdentityProvider) SignUp(_ context.Context, email, password string) (*service.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.accounts[email]; ok {
		return nil, domainerrors.ErrEmailAlreadyRegistered
	}

	uid := "uid-" + email
	p.accounts[email] = fakeAccount{uid: uid, password: password}

	return &service.Identity{UID: uid, Email: email}, nil
}

func (p *fakeIdentityProvider) SetProfile(_ context.Context, uid, displayName, photoURL string) (*service.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for email, account := range p.accounts {
		if account.uid != uid {
			continue
		}
		if displayName != "" {
			account.name = displayName
		}
		if photoURL != "" {
			account.photoURL = photoURL
		}
		p.accounts[email] = account

		return &service.Identity{UID: uid, Email: email, DisplayName: account.name, PhotoURL: account.photoURL}, nil
	}

	return nil, domainerrors.ErrNotFound
}

func (p *fakeIdentityProvider) UploadProfileImage(_ context.Context, uid string, _ string, _ []byte) (string, error) {
	return "https://cdn.dipto.example/profiles/" + uid + ".png", nil
}
