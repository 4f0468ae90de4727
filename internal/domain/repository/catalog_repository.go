// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"dipto/internal/domain/entity"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrMenuItemNotFound is returned when a menu item is not found.
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// CatalogRepository defines the interface for menu catalog operations.
// The catalog is seeded once at startup; only availability is mutable.
type CatalogRepository interface {
	// FindAll retrieves every menu item in catalog order.
	FindAll(ctx context.Context) ([]*entity.MenuItem, error)

	// FindByID retrieves a menu item by its catalog identifier.
	FindByID(ctx context.Context, id string) (*entity.MenuItem, error)

	// SetAvailability flips whether an item can be ordered and returns
	// the updated item.
	SetAvailability(ctx context.Context, id string, available bool) (*entity.MenuItem, error)
}
