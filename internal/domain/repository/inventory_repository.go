package repository

import (
	"context"
	"errors"

	"dipto/internal/domain/entity"
)

// Domain-specific errors for inventory persistence.
var (
	// ErrInventoryItemNotFound is returned when a stock line is not found.
	ErrInventoryItemNotFound = errors.New("inventory item not found")
)

// InventoryRepository defines the interface for kitchen stock levels.
type InventoryRepository interface {
	// FindAll retrieves every stock line in seed order.
	FindAll(ctx context.Context) ([]*entity.InventoryItem, error)

	// FindByName retrieves a stock line by its name.
	FindByName(ctx context.Context, name string) (*entity.InventoryItem, error)

	// SetStock sets the stock level for a line and returns the updated
	// line. The level is clamped to the line's maximum capacity.
	SetStock(ctx context.Context, name string, stock int) (*entity.InventoryItem, error)
}
