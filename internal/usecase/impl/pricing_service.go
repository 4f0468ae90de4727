// Package impl contains the application-specific business rules implementations.
package impl

import (
	"dipto/config"
	"dipto/internal/domain/entity"
	"dipto/internal/usecase"
)

// pricingService implements the PricingUsecase interface.
type pricingService struct {
	taxRate     float64
	deliveryFee float64
}

// NewPricingService is the constructor for pricingService.
func NewPricingService(cfg *config.Config) usecase.PricingUsecase {
	return &pricingService{
		taxRate:     cfg.Pricing.TaxRate,
		deliveryFee: cfg.Pricing.DeliveryFee,
	}
}

// QuoteCart computes the derived totals for a cart. An empty cart
// quotes all zeros; the delivery fee only applies once something is in
// the cart. Figures keep full floating precision; rounding to two
// decimals is left to the presentation layer.
func (srv *pricingService) QuoteCart(cart *entity.Cart) usecase.Quote {
	if cart == nil || cart.IsEmpty() {
		return usecase.Quote{}
	}

	subtotal := 0.0
	for _, entry := range cart.Entries {
		subtotal += entry.Item.Price * float64(entry.Quantity)
	}

	quote := usecase.Quote{
		Subtotal: subtotal,
		Tax:      subtotal * srv.taxRate,
		Delivery: srv.deliveryFee,
	}
	quote.Total = quote.Subtotal + quote.Tax + quote.Delivery

	return quote
}
