package repository

import (
	"context"

	"dipto/internal/domain/entity"
)

// ActivityRepository defines the interface for the append-only admin
// activity log. Bounded like the notification feed.
type ActivityRepository interface {
	// Append prepends a new entry; the log stays most-recent-first.
	Append(ctx context.Context, entry *entity.ActivityEntry) error

	// FindAll retrieves the log, most recent first.
	FindAll(ctx context.Context) ([]*entity.ActivityEntry, error)
}
