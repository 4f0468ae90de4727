package usecase

import (
	"context"

	"dipto/internal/domain/entity"
)

// InventoryView is a stock line with its derived low-stock flag.
type InventoryView struct {
	*entity.InventoryItem
	LowStock bool `json:"low_stock"`
}

// InventoryUsecase defines the interface for kitchen stock operations.
type InventoryUsecase interface {
	// ListInventory returns every stock line in seed order.
	ListInventory(ctx context.Context) ([]*InventoryView, error)

	// Restock sets a line back to its maximum capacity, then records a
	// system notification and an activity entry.
	Restock(ctx context.Context, name string, actor string) (*InventoryView, error)
}
