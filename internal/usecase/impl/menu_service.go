package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dipto/internal/domain/entity"
	domainerrors "dipto/internal/domain/errors"
	"dipto/internal/domain/repository"
	"dipto/internal/usecase"

	"github.com/pkg/errors"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	catalogRepo  repository.CatalogRepository
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(
	catalogRepo repository.CatalogRepository,
	activityRepo repository.ActivityRepository,
	logger *slog.Logger,
) usecase.MenuUsecase {
	return &menuService{
		catalogRepo:  catalogRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// ListMenu returns the full catalog in menu order.
func (srv *menuService) ListMenu(ctx context.Context) ([]*entity.MenuItem, error) {
	items, err := srv.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}

	return items, nil
}

// GetItem returns a single menu item by ID.
func (srv *menuService) GetItem(ctx context.Context, id string) (*entity.MenuItem, error) {
	item, err := srv.catalogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	return item, nil
}

// SearchMenu returns the items whose name contains the query,
// case-insensitively, restricted to a category when one is given.
// "All" is treated the same as no category.
func (srv *menuService) SearchMenu(ctx context.Context, query string, category string) ([]*entity.MenuItem, error) {
	items, err := srv.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	section := strings.ToLower(strings.TrimSpace(category))
	if section == "all" {
		section = ""
	}
	if needle == "" && section == "" {
		return items, nil
	}

	matched := make([]*entity.MenuItem, 0, len(items))
	for _, item := range items {
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		if section != "" && strings.ToLower(item.Category.String()) != section {
			continue
		}
		matched = append(matched, item)
	}

	return matched, nil
}

// ToggleAvailability flips whether an item can be ordered and records
// the change in the activity log.
func (srv *menuService) ToggleAvailability(ctx context.Context, id string, actor string) (*entity.MenuItem, error) {
	srv.logger.Info("Toggling menu item availability", "itemID", id)

	// 1. Find the current state
	item, err := srv.catalogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	// 2. Flip availability
	updated, err := srv.catalogRepo.SetAvailability(ctx, id, !item.Available)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set availability")
	}

	// 3. Record the change
	verb := "Disabled"
	if updated.Available {
		verb = "Enabled"
	}
	if err := srv.activityRepo.Append(ctx, &entity.ActivityEntry{
		Action:    fmt.Sprintf("%s %s", updated.Name, verb),
		Actor:     actor,
		Category:  entity.ActivityInfo,
		CreatedAt: time.Now(),
	}); err != nil {
		srv.logger.Warn("Failed to record availability change", "error", err)
	}

	return updated, nil
}
