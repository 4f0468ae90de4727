package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"dipto/internal/domain/entity"
	domainerrors "dipto/internal/domain/errors"
	"dipto/internal/domain/repository"
	"dipto/internal/usecase"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	inventoryRepo    repository.InventoryRepository
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityRepository
	logger           *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	notificationRepo repository.NotificationRepository,
	activityRepo repository.ActivityRepository,
	logger *slog.Logger,
) usecase.InventoryUsecase {
	return &inventoryService{
		inventoryRepo:    inventoryRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		logger:           logger,
	}
}

// ListInventory returns every stock line in seed order.
func (srv *inventoryService) ListInventory(ctx context.Context) ([]*usecase.InventoryView, error) {
	items, err := srv.inventoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	views := make([]*usecase.InventoryView, 0, len(items))
	for _, item := range items {
		views = append(views, inventoryView(item))
	}

	return views, nil
}

// Restock sets a line back to its maximum capacity and records exactly
// one system notification and one activity entry.
func (srv *inventoryService) Restock(ctx context.Context, name string, actor string) (*usecase.InventoryView, error) {
	srv.logger.Info("Restocking inventory line", "name", name)

	// 1. Resolve the line to learn its capacity
	item, err := srv.inventoryRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return nil, domainerrors.ErrInventoryItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory item")
	}

	// 2. Fill to capacity
	updated, err := srv.inventoryRepo.SetStock(ctx, name, item.Max)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set stock")
	}

	// 3. Record the side effects
	if err := srv.activityRepo.Append(ctx, &entity.ActivityEntry{
		Action:    fmt.Sprintf("Restocked %s", updated.Name),
		Actor:     actor,
		Category:  entity.ActivityInfo,
		CreatedAt: time.Now(),
	}); err != nil {
		srv.logger.Warn("Failed to record restock", "error", err)
	}

	if err := srv.notificationRepo.Push(ctx, &entity.Notification{
		ID:        uuid.New(),
		Title:     "Inventory Updated",
		Message:   fmt.Sprintf("Successfully restocked %s to maximum capacity.", updated.Name),
		Category:  entity.NotificationSystem,
		CreatedAt: time.Now(),
	}); err != nil {
		srv.logger.Warn("Failed to push restock notification", "error", err)
	}

	return inventoryView(updated), nil
}

func inventoryView(item *entity.InventoryItem) *usecase.InventoryView {
	return &usecase.InventoryView{
		InventoryItem: item,
		LowStock:      item.IsLowStock(),
	}
}
