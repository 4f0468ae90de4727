package memory

import (
	"context"
	"sync"

	"dipto/internal/domain/entity"
	"dipto/internal/domain/repository"
)

type inventoryRepository struct {
	mu    sync.RWMutex
	order []string                         // Line names in seed order.
	items map[string]*entity.InventoryItem // Keyed by line name.
}

// NewInventoryRepository creates a stock store seeded with the kitchen
// inventory lines.
func NewInventoryRepository() repository.InventoryRepository {
	repo := &inventoryRepository{
		items: make(map[string]*entity.InventoryItem),
	}
	for _, item := range seedInventory() {
		repo.order = append(repo.order, item.Name)
		repo.items[item.Name] = item
	}

	return repo
}

// FindAll retrieves every stock line in seed order.
func (r *inventoryRepository) FindAll(_ context.Context) ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*entity.InventoryItem, 0, len(r.order))
	for _, name := range r.order {
		clone := *r.items[name]
		items = append(items, &clone)
	}

	return items, nil
}

// FindByName retrieves a stock line by its name.
func (r *inventoryRepository) FindByName(_ context.Context, name string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	if !ok {
		return nil, repository.ErrInventoryItemNotFound
	}

	clone := *item

	return &clone, nil
}

// SetStock sets the stock level for a line, clamped to [0, Max].
func (r *inventoryRepository) SetStock(_ context.Context, name string, stock int) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[name]
	if !ok {
		return nil, repository.ErrInventoryItemNotFound
	}

	if stock < 0 {
		stock = 0
	}
	if stock > item.Max {
		stock = item.Max
	}
	item.Stock = stock
	clone := *item

	return &clone, nil
}

// seedInventory returns the kitchen stock lines.
func seedInventory() []*entity.InventoryItem {
	return []*entity.InventoryItem{
		{Name: "Salmon", Stock: 45, Unit: "kg", Max: 100, Threshold: 10},
		{Name: "Truffles", Stock: 8, Unit: "g", Max: 50, Threshold: 15},
		{Name: "Burrata", Stock: 12, Unit: "pcs", Max: 40, Threshold: 5},
		{Name: "Pasta", Stock: 80, Unit: "kg", Max: 150, Threshold: 20},
	}
}
