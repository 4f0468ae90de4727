package usecase

import (
	"context"

	"dipto/internal/domain/entity"
)

// CartView is the cart ledger together with its derived totals, as
// presented to the storefront.
type CartView struct {
	Key       string              `json:"key"`
	Entries   []*entity.CartEntry `json:"entries"`
	ItemCount int                 `json:"item_count"`
	Quote     Quote               `json:"quote"`
}

// CartUsecase defines the interface for cart ledger operations. Every
// mutation returns the resulting view so clients never need a
// follow-up read.
type CartUsecase interface {
	// GetCart returns the current cart view for a session key.
	GetCart(ctx context.Context, key string) (*CartView, error)

	// AddItem puts one unit of a menu item into the cart. Adding an
	// item already present increments its quantity instead.
	AddItem(ctx context.Context, key, itemID string) (*CartView, error)

	// UpdateQuantity adjusts an entry's quantity by delta. The result
	// never drops below one; use RemoveItem to take an entry out.
	UpdateQuantity(ctx context.Context, key, itemID string, delta int) (*CartView, error)

	// RemoveItem takes an entry out of the cart entirely.
	RemoveItem(ctx context.Context, key, itemID string) (*CartView, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, key string) (*CartView, error)
}
