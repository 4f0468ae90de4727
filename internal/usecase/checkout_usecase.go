package usecase

import (
	"context"
)

// CheckoutPhase tracks a checkout session through the simulated
// payment round-trip.
type CheckoutPhase string

const (
	// CheckoutIdle means no payment is in flight for the session.
	CheckoutIdle CheckoutPhase = "idle"
	// CheckoutProcessing means the simulated payment is running.
	CheckoutProcessing CheckoutPhase = "processing"
	// CheckoutSuccess means the payment completed and the cart was cleared.
	CheckoutSuccess CheckoutPhase = "success"
)

// CheckoutState is the observable state of a checkout session.
type CheckoutState struct {
	Phase     CheckoutPhase `json:"phase"`
	Reference string        `json:"reference,omitempty"`   // Order reference, set on success.
	QRCodePNG []byte        `json:"qr_code_png,omitempty"` // Confirmation QR image, set on success.
	Quote     Quote         `json:"quote"`                 // Totals captured at submission.
}

// CheckoutUsecase defines the interface for the payment simulation.
// One session exists per cart key; a session in the processing phase
// rejects further submissions until it completes.
type CheckoutUsecase interface {
	// Status returns the current checkout state for a session key.
	Status(ctx context.Context, key string) (*CheckoutState, error)

	// Submit starts the simulated payment for the session's cart.
	// Fails when the cart is empty or a payment is already in flight.
	Submit(ctx context.Context, key string) (*CheckoutState, error)
}
