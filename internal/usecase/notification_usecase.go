package usecase

import (
	"context"

	"dipto/internal/domain/entity"
)

// NotificationView is a feed entry with its display-ready relative age.
type NotificationView struct {
	*entity.Notification
	Time string `json:"time"` // Relative age, e.g. "5m ago".
}

// NotificationUsecase defines the interface for the admin notification feed.
type NotificationUsecase interface {
	// ListNotifications returns the feed, most recent first.
	ListNotifications(ctx context.Context) ([]*NotificationView, error)

	// MarkAllRead flags every feed entry as read.
	MarkAllRead(ctx context.Context) error

	// UnreadCount returns the badge count of unread entries.
	UnreadCount(ctx context.Context) (int, error)
}
