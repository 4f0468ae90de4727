// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dipto/internal/domain/entity"
)

// MenuUsecase defines the interface for catalog-related business operations.
type MenuUsecase interface {
	// ListMenu returns the full catalog in menu order.
	ListMenu(ctx context.Context) ([]*entity.MenuItem, error)

	// GetItem returns a single menu item by ID.
	GetItem(ctx context.Context, id string) (*entity.MenuItem, error)

	// SearchMenu returns the items whose name contains the query,
	// case-insensitively, restricted to a category when one is given.
	// An empty query and category return the full catalog.
	SearchMenu(ctx context.Context, query string, category string) ([]*entity.MenuItem, error)

	// ToggleAvailability flips whether an item can be ordered and logs
	// the change to the activity feed.
	ToggleAvailability(ctx context.Context, id string, actor string) (*entity.MenuItem, error)
}
