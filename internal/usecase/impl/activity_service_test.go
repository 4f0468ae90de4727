package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dipto/internal/infra/persistence/memory"
)

func TestActivityService_ListActivity(t *testing.T) {
	service := NewActivityService(memory.NewActivityRepository(200), newTestLogger())

	views, err := service.ListActivity(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "Updated Menu", views[0].Action)
	assert.Equal(t, "2m ago", views[0].Time)
	assert.Equal(t, "Successful Login", views[1].Action)
	assert.Equal(t, "1h ago", views[1].Time)
}
