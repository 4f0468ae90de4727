package usecase

import (
	"dipto/internal/domain/entity"
)

// Quote holds the derived totals for a cart. All figures are recomputed
// from the cart contents on every read; nothing here is stored.
type Quote struct {
	Subtotal float64 `json:"subtotal"` // Sum of price * quantity across entries.
	Tax      float64 `json:"tax"`      // Subtotal * tax rate.
	Delivery float64 `json:"delivery"` // Flat fee, zero for an empty cart.
	Total    float64 `json:"total"`    // Subtotal + tax + delivery.
}

// PricingUsecase defines the interface for cart total derivation.
type PricingUsecase interface {
	// QuoteCart computes the totals for a cart. An empty cart quotes
	// all zeros, including the delivery fee.
	QuoteCart(cart *entity.Cart) Quote
}
