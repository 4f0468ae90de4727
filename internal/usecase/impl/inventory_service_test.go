package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "dipto/internal/domain/errors"
	"dipto/internal/domain/repository"
	"dipto/internal/infra/persistence/memory"
	"dipto/internal/usecase"
)

// inventoryServiceFixtures holds all test dependencies for inventory tests.
type inventoryServiceFixtures struct {
	service          usecase.InventoryUsecase
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityRepository
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	t.Helper()

	notificationRepo := memory.NewNotificationRepository(200)
	activityRepo := memory.NewActivityRepository(200)

	return inventoryServiceFixtures{
		service:          NewInventoryService(memory.NewInventoryRepository(), notificationRepo, activityRepo, newTestLogger()),
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
	}
}

func TestInventoryService_ListInventory(t *testing.T) {
	fx := createTestInventoryService(t)

	items, err := fx.service.ListInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Salmon", items[0].Name)
	assert.False(t, items[0].LowStock)
	assert.True(t, items[1].LowStock) // Truffles start at 8 with threshold 15
}

func TestInventoryService_Restock_FillsToCapacity(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	item, err := fx.service.Restock(ctx, "Truffles", "Admin Dipto")
	require.NoError(t, err)
	assert.Equal(t, 50, item.Stock)
	assert.False(t, item.LowStock)
}

func TestInventoryService_Restock_RecordsOneNotificationAndOneActivity(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	before, err := fx.notificationRepo.FindAll(ctx)
	require.NoError(t, err)
	activityBefore, err := fx.activityRepo.FindAll(ctx)
	require.NoError(t, err)

	_, err = fx.service.Restock(ctx, "Burrata", "Admin Dipto")
	require.NoError(t, err)

	after, err := fx.notificationRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "Inventory Updated", after[0].Title)
	assert.Equal(t, "Successfully restocked Burrata to maximum capacity.", after[0].Message)

	activityAfter, err := fx.activityRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, activityAfter, len(activityBefore)+1)
	assert.Equal(t, "Restocked Burrata", activityAfter[0].Action)
}

func TestInventoryService_Restock_UnknownLine(t *testing.T) {
	fx := createTestInventoryService(t)

	_, err := fx.service.Restock(context.Background(), "Caviar", "Admin Dipto")
	assert.ErrorIs(t, err, domainerrors.ErrInventoryItemNotFound)
}
