package repository

import (
	"context"
	"errors"

	"dipto/internal/domain/entity"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for the admin order queue.
// Orders are seeded or created by intake; they are never deleted.
type OrderRepository interface {
	// FindAll retrieves every order, most recently placed first.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByID retrieves an order by its reference.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// UpdateStatus sets the status of an order and returns the updated order.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)
}
