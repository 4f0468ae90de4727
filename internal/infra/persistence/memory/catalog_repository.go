// Package memory provides in-process implementations of the repository
// interfaces. All state lives in memory and resets on restart; every
// repository is safe for concurrent use and hands out copies so callers
// never share mutable state with the store.
package memory

import (
	"context"
	"sync"

	"dipto/internal/domain/entity"
	"dipto/internal/domain/repository"
)

type catalogRepository struct {
	mu    sync.RWMutex
	order []string                    // Item IDs in catalog order.
	items map[string]*entity.MenuItem // Keyed by item ID.
}

// NewCatalogRepository creates a catalog seeded with the launch menu.
func NewCatalogRepository() repository.CatalogRepository {
	repo := &catalogRepository{
		items: make(map[string]*entity.MenuItem),
	}
	for _, item := range seedMenuItems() {
		repo.order = append(repo.order, item.ID)
		repo.items[item.ID] = item
	}

	return repo
}

// FindAll retrieves every menu item in catalog order.
func (r *catalogRepository) FindAll(_ context.Context) ([]*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*entity.MenuItem, 0, len(r.order))
	for _, id := range r.order {
		item := *r.items[id]
		items = append(items, &item)
	}

	return items, nil
}

// FindByID retrieves a menu item by its catalog identifier.
func (r *catalogRepository) FindByID(_ context.Context, id string) (*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrMenuItemNotFound
	}

	clone := *item

	return &clone, nil
}

// SetAvailability flips whether an item can be ordered.
func (r *catalogRepository) SetAvailability(_ context.Context, id string, available bool) (*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrMenuItemNotFound
	}

	item.Available = available
	clone := *item

	return &clone, nil
}

// seedMenuItems returns the launch menu. Every item starts available.
func seedMenuItems() []*entity.MenuItem {
	return []*entity.MenuItem{
		{
			ID:          "1",
			Name:        "Truffle Mac & Cheese",
			Description: "Creamy artisanal pasta with black truffle infusion and breadcrumbs.",
			Price:       18.50,
			Category:    entity.CategoryMainCourse,
			Image:       "https://images.unsplash.com/photo-1543339308-43e59d6b73a6?auto=format&fit=crop&q=80&w=400",
			Rating:      4.8,
			Available:   true,
		},
		{
			ID:          "2",
			Name:        "Grilled Salmon Fillet",
			Description: "Fresh Atlantic salmon with roasted vegetables and lemon zest.",
			Price:       24.00,
			Category:    entity.CategoryMainCourse,
			Image:       "https://images.unsplash.com/photo-1467003909585-2f8a72700288?auto=format&fit=crop&q=80&w=400",
			Rating:      4.9,
			Available:   true,
		},
		{
			ID:          "3",
			Name:        "Arancini Siciliani",
			Description: "Crispy risotto balls filled with mozzarella and marinara sauce.",
			Price:       12.00,
			Category:    entity.CategoryStarters,
			Image:       "https://images.unsplash.com/photo-1632778149975-420e0e75ee08?auto=format&fit=crop&q=80&w=400",
			Rating:      4.7,
			Available:   true,
		},
		{
			ID:          "4",
			Name:        "Dark Chocolate Fondant",
			Description: "Molten center chocolate cake with vanilla bean ice cream.",
			Price:       9.50,
			Category:    entity.CategoryDesserts,
			Image:       "https://images.unsplash.com/photo-1541919329513-35f7af297129?auto=format&fit=crop&q=80&w=400",
			Rating:      5.0,
			Available:   true,
		},
		{
			ID:          "5",
			Name:        "Burrata Salad",
			Description: "Creamy burrata cheese with heirloom tomatoes and balsamic glaze.",
			Price:       14.50,
			Category:    entity.CategoryStarters,
			Image:       "https://images.unsplash.com/photo-1608897013039-887f3c0cac56?auto=format&fit=crop&q=80&w=400",
			Rating:      4.8,
			Available:   true,
		},
		{
			ID:          "6",
			Name:        "Elderflower Spritz",
			Description: "Refreshing elderflower liqueur with prosecco and soda.",
			Price:       11.00,
			Category:    entity.CategoryDrinks,
			Image:       "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?auto=format&fit=crop&q=80&w=400",
			Rating:      4.6,
			Available:   true,
		},
		{
			ID:          "7",
			Name:        "Pan-Seared Scallops",
			Description: "Jumbo scallops with cauliflower puree and herb butter.",
			Price:       26.00,
			Category:    entity.CategoryMainCourse,
			Image:       "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?auto=format&fit=crop&q=80&w=400",
			Rating:      4.9,
			Available:   true,
		},
		{
			ID:          "8",
			Name:        "Espresso Martini",
			Description: "Classic vodka-based cocktail with fresh espresso and coffee liqueur.",
			Price:       13.00,
			Category:    entity.CategoryDrinks,
			Image:       "https://images.unsplash.com/photo-1545438102-799c3991ffb2?auto=format&fit=crop&q=80&w=400",
			Rating:      4.8,
			Available:   true,
		},
	}
}
