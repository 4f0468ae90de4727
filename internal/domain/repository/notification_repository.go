package repository

import (
	"context"

	"dipto/internal/domain/entity"
)

// NotificationRepository defines the interface for the admin
// notification feed. The feed is bounded: implementations drop the
// oldest entries once the retention limit is reached.
type NotificationRepository interface {
	// Push prepends a new entry; the feed stays most-recent-first.
	Push(ctx context.Context, notification *entity.Notification) error

	// FindAll retrieves the feed, most recent first.
	FindAll(ctx context.Context) ([]*entity.Notification, error)

	// MarkAllRead flags every entry as read.
	MarkAllRead(ctx context.Context) error

	// UnreadCount returns the number of unread entries.
	UnreadCount(ctx context.Context) (int, error)
}
