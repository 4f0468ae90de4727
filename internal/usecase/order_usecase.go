package usecase

import (
	"context"

	"dipto/internal/domain/entity"
)

// DashboardStats summarizes the order queue for the admin dashboard.
type DashboardStats struct {
	Revenue      float64 `json:"revenue"`       // Delivered order totals plus historic baseline.
	ActiveOrders int     `json:"active_orders"` // Orders not yet delivered.
	Customers    int     `json:"customers"`     // Registered customer count.
	Rating       float64 `json:"rating"`        // Average storefront rating.
}

// OrderUsecase defines the interface for order queue operations.
// Status changes feed the notification and activity streams.
type OrderUsecase interface {
	// ListOrders returns the queue, most recently placed first,
	// optionally filtered by a case-insensitive customer/reference query
	// and by status.
	ListOrders(ctx context.Context, query string, status entity.OrderStatus) ([]*entity.Order, error)

	// GetOrder returns a single order by reference.
	GetOrder(ctx context.Context, id string) (*entity.Order, error)

	// AdvanceOrder moves an order to the next status in the pipeline.
	AdvanceOrder(ctx context.Context, id string, actor string) (*entity.Order, error)

	// SetStatus moves an order to an explicit later status. Backward
	// and same-status moves are rejected.
	SetStatus(ctx context.Context, id string, status entity.OrderStatus, actor string) (*entity.Order, error)

	// Stats computes the dashboard summary figures.
	Stats(ctx context.Context) (*DashboardStats, error)
}
