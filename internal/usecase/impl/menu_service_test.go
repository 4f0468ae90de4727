package impl

import (
	"context"
	"testing"

	domainerrors "dipto/internal/domain/errors"
	"dipto/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuService_ListMenu(t *testing.T) {
	svc := NewMenuService(memory.NewCatalogRepository(), memory.NewActivityRepository(50), newTestLogger())

	items, err := svc.ListMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 8)
	assert.Equal(t, "Truffle Mac & Cheese", items[0].Name)
	assert.True(t, items[0].Available)
}

func TestMenuService_GetItem(t *testing.T) {
	svc := NewMenuService(memory.NewCatalogRepository(), memory.NewActivityRepository(50), newTestLogger())

	item, err := svc.GetItem(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Grilled Salmon Fillet", item.Name)

	_, err = svc.GetItem(context.Background(), "999")
	assert.ErrorIs(t, err, domainerrors.ErrMenuItemNotFound)
}

func TestMenuService_SearchMenu(t *testing.T) {
	svc := NewMenuService(memory.NewCatalogRepository(), memory.NewActivityRepository(50), newTestLogger())

	matched, err := svc.SearchMenu(context.Background(), "salmon", "")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Grilled Salmon Fillet", matched[0].Name)

	// Blank query returns the full catalog; "All" means no category filter
	all, err := svc.SearchMenu(context.Background(), "   ", "All")
	require.NoError(t, err)
	assert.Len(t, all, 8)

	none, err := svc.SearchMenu(context.Background(), "pizza", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMenuService_SearchMenu_Category(t *testing.T) {
	svc := NewMenuService(memory.NewCatalogRepository(), memory.NewActivityRepository(50), newTestLogger())

	drinks, err := svc.SearchMenu(context.Background(), "", "Drinks")
	require.NoError(t, err)
	require.Len(t, drinks, 2)
	assert.Equal(t, "Elderflower Spritz", drinks[0].Name)

	// Query and category combine
	martini, err := svc.SearchMenu(context.Background(), "martini", "drinks")
	require.NoError(t, err)
	require.Len(t, martini, 1)
	assert.Equal(t, "Espresso Martini", martini[0].Name)
}

func TestMenuService_ToggleAvailability(t *testing.T) {
	activityRepo := memory.NewActivityRepository(50)
	svc := NewMenuService(memory.NewCatalogRepository(), activityRepo, newTestLogger())

	item, err := svc.ToggleAvailability(context.Background(), "1", "Admin Dipto")
	require.NoError(t, err)
	assert.False(t, item.Available)

	item, err = svc.ToggleAvailability(context.Background(), "1", "Admin Dipto")
	require.NoError(t, err)
	assert.True(t, item.Available)

	entries, err := activityRepo.FindAll(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(entries), 2)
	assert.Equal(t, "Truffle Mac & Cheese Enabled", entries[0].Action)
	assert.Equal(t, "Truffle Mac & Cheese Disabled", entries[1].Action)

	_, err = svc.ToggleAvailability(context.Background(), "999", "Admin Dipto")
	assert.ErrorIs(t, err, domainerrors.ErrMenuItemNotFound)
}
