package memory

import (
	"context"
	"sync"

	"dipto/internal/domain/entity"
	"dipto/internal/domain/repository"
)

type cartRepository struct {
	mu    sync.RWMutex
	carts map[string]*entity.Cart // Keyed by session key.
}

// NewCartRepository creates an empty cart store.
func NewCartRepository() repository.CartRepository {
	return &cartRepository{
		carts: make(map[string]*entity.Cart),
	}
}

// FindByKey retrieves the cart for a session key. A missing key yields
// a fresh empty cart so callers never deal with absence.
func (r *cartRepository) FindByKey(_ context.Context, key string) (*entity.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[key]
	if !ok {
		return &entity.Cart{Key: key}, nil
	}

	return cloneCart(cart), nil
}

// Save persists the full cart state for its key.
func (r *cartRepository) Save(_ context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.Key] = cloneCart(cart)

	return nil
}

// Clear empties the cart for a session key.
func (r *cartRepository) Clear(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, key)

	return nil
}

func cloneCart(cart *entity.Cart) *entity.Cart {
	clone := &entity.Cart{
		Key:     cart.Key,
		Entries: make([]*entity.CartEntry, 0, len(cart.Entries)),
	}
	for _, entry := range cart.Entries {
		e := *entry
		clone.Entries = append(clone.Entries, &e)
	}

	return clone
}
