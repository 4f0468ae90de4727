package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dipto/internal/domain/entity"
	"dipto/internal/domain/repository"
)

func TestCatalogRepository_Seed(t *testing.T) {
	repo := NewCatalogRepository()

	items, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 8)

	// Seed order is catalog order
	assert.Equal(t, "Truffle Mac & Cheese", items[0].Name)
	assert.Equal(t, "Espresso Martini", items[7].Name)
	for _, item := range items {
		assert.True(t, item.Available)
	}
}

func TestCatalogRepository_SetAvailability(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	updated, err := repo.SetAvailability(ctx, "2", false)
	require.NoError(t, err)
	assert.False(t, updated.Available)

	item, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.False(t, item.Available)

	_, err = repo.SetAvailability(ctx, "999", false)
	assert.ErrorIs(t, err, repository.ErrMenuItemNotFound)
}

func TestCatalogRepository_FindAllReturnsCopies(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	items, err := repo.FindAll(ctx)
	require.NoError(t, err)

	// Mutating the returned slice must not leak into the store
	items[0].Price = 999

	fresh, err := repo.FindByID(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 18.50, fresh.Price)
}

func TestCartRepository_MissingKeyYieldsEmptyCart(t *testing.T) {
	repo := NewCartRepository()

	cart, err := repo.FindByKey(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "nope", cart.Key)
	assert.True(t, cart.IsEmpty())
}

func TestCartRepository_SaveAndClear(t *testing.T) {
	repo := NewCartRepository()
	ctx := context.Background()

	cart := &entity.Cart{
		Key: "session-1",
		Entries: []*entity.CartEntry{
			{Item: entity.MenuItem{ID: "1", Name: "Truffle Mac & Cheese", Price: 18.50}, Quantity: 2},
		},
	}
	require.NoError(t, repo.Save(ctx, cart))

	// The stored cart is a copy, not an alias
	cart.Entries[0].Quantity = 99

	loaded, err := repo.FindByKey(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, loaded.Entries, 1)
	assert.Equal(t, 2, loaded.Entries[0].Quantity)

	require.NoError(t, repo.Clear(ctx, "session-1"))

	cleared, err := repo.FindByKey(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, cleared.IsEmpty())
}

func TestOrderRepository_Seed(t *testing.T) {
	repo := NewOrderRepository()

	orders, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 4)

	// Most recently placed first
	assert.Equal(t, "ORD-1287", orders[0].ID)
	assert.Equal(t, "ORD-1286", orders[3].ID)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	updated, err := repo.UpdateStatus(ctx, "ORD-1287", entity.OrderStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, updated.Status)

	order, err := repo.FindByID(ctx, "ORD-1287")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, order.Status)

	_, err = repo.UpdateStatus(ctx, "ORD-0000", entity.OrderStatusReady)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestInventoryRepository_SetStockClamps(t *testing.T) {
	repo := NewInventoryRepository()
	ctx := context.Background()

	over, err := repo.SetStock(ctx, "Salmon", 500)
	require.NoError(t, err)
	assert.Equal(t, 100, over.Stock)

	under, err := repo.SetStock(ctx, "Salmon", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, under.Stock)

	_, err = repo.SetStock(ctx, "Caviar", 10)
	assert.ErrorIs(t, err, repository.ErrInventoryItemNotFound)
}

func TestInventoryRepository_Seed(t *testing.T) {
	repo := NewInventoryRepository()

	items, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, "Salmon", items[0].Name)
	assert.False(t, items[0].IsLowStock()) // 45 > 10
	assert.Equal(t, "Truffles", items[1].Name)
	assert.True(t, items[1].IsLowStock()) // 8 <= 15
}

func TestNotificationRepository_SeedAndUnread(t *testing.T) {
	repo := NewNotificationRepository(200)
	ctx := context.Background()

	entries, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "New Order Received", entries[0].Title)

	count, err := repo.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.MarkAllRead(ctx))

	count, err = repo.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNotificationRepository_RetentionTrimsOldest(t *testing.T) {
	repo := NewNotificationRepository(5)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		err := repo.Push(ctx, &entity.Notification{
			ID:        uuid.New(),
			Title:     "Inventory Updated",
			Category:  entity.NotificationSystem,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	entries, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestActivityRepository_AppendPrepends(t *testing.T) {
	repo := NewActivityRepository(200)
	ctx := context.Background()

	err := repo.Append(ctx, &entity.ActivityEntry{
		Action:    "Restocked Salmon",
		Actor:     "Admin Dipto",
		Category:  entity.ActivityInfo,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	entries, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Restocked Salmon", entries[0].Action)
}

func TestActivityRepository_RetentionTrimsOldest(t *testing.T) {
	repo := NewActivityRepository(3)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		err := repo.Append(ctx, &entity.ActivityEntry{
			Action:    "Updated Menu",
			Actor:     "Admin Dipto",
			Category:  entity.ActivityInfo,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	entries, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
