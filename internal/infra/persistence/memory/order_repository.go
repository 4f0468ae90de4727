package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"dipto/internal/domain/entity"
	"dipto/internal/domain/repository"
)

type orderRepository struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order // Keyed by order reference.
}

// NewOrderRepository creates an order queue seeded with the demo
// fulfilment backlog.
func NewOrderRepository() repository.OrderRepository {
	repo := &orderRepository{
		orders: make(map[string]*entity.Order),
	}
	for _, order := range seedOrders(time.Now()) {
		repo.orders[order.ID] = order
	}

	return repo
}

// FindAll retrieves every order, most recently placed first.
func (r *orderRepository) FindAll(_ context.Context) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*entity.Order, 0, len(r.orders))
	for _, order := range r.orders {
		clone := *order
		orders = append(orders, &clone)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].PlacedAt.After(orders[j].PlacedAt)
	})

	return orders, nil
}

// FindByID retrieves an order by its reference.
func (r *orderRepository) FindByID(_ context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	clone := *order

	return &clone, nil
}

// UpdateStatus sets the status of an order. Transition validation
// belongs to the use case layer; the repository stores whatever it is
// handed.
func (r *orderRepository) UpdateStatus(_ context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	order.Status = status
	clone := *order

	return &clone, nil
}

// seedOrders returns the demo backlog. Placement times are anchored to
// process start so the dashboard shows a fresh-looking queue.
func seedOrders(now time.Time) []*entity.Order {
	return []*entity.Order{
		{
			ID:       "ORD-1289",
			Customer: "Alice Johnson",
			Items:    "Truffle Mac & Cheese, Spritz",
			Total:    29.50,
			Status:   entity.OrderStatusPreparing,
			PlacedAt: now.Add(-25 * time.Minute),
		},
		{
			ID:       "ORD-1288",
			Customer: "Bob Smith",
			Items:    "Salmon Fillet",
			Total:    24.00,
			Status:   entity.OrderStatusDelivered,
			PlacedAt: now.Add(-40 * time.Minute),
		},
		{
			ID:       "ORD-1287",
			Customer: "Charlie Davis",
			Items:    "Burrata Salad, 2x Soda",
			Total:    22.50,
			Status:   entity.OrderStatusPending,
			PlacedAt: now.Add(-15 * time.Minute),
		},
		{
			ID:       "ORD-1286",
			Customer: "David Wilson",
			Items:    "Scallops, Martini",
			Total:    39.00,
			Status:   entity.OrderStatusReady,
			PlacedAt: now.Add(-55 * time.Minute),
		},
	}
}
