package repository

import (
	"context"

	"dipto/internal/domain/entity"
)

// CartRepository defines the interface for cart ledger storage.
// Carts are keyed by session; a missing key yields a fresh empty cart.
type CartRepository interface {
	// FindByKey retrieves the cart for a session key, creating an empty
	// cart when none exists yet. The returned cart is a copy.
	FindByKey(ctx context.Context, key string) (*entity.Cart, error)

	// Save persists the full cart state for its key.
	Save(ctx context.Context, cart *entity.Cart) error

	// Clear empties the cart for a session key. No-op when absent.
	Clear(ctx context.Context, key string) error
}
