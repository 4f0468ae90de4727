package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"dipto/internal/domain/entity"
	"dipto/internal/domain/repository"
)

type notificationRepository struct {
	mu        sync.RWMutex
	retention int
	entries   []*entity.Notification // Most recent first.
}

// NewNotificationRepository creates a bounded notification feed seeded
// with the demo entries. The oldest entries are dropped once retention
// is exceeded.
func NewNotificationRepository(retention int) repository.NotificationRepository {
	return &notificationRepository{
		retention: retention,
		entries:   seedNotifications(time.Now()),
	}
}

// Push prepends a new entry, trimming the tail past retention.
func (r *notificationRepository) Push(_ context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *notification
	r.entries = append([]*entity.Notification{&clone}, r.entries...)
	if r.retention > 0 && len(r.entries) > r.retention {
		r.entries = r.entries[:r.retention]
	}

	return nil
}

// FindAll retrieves the feed, most recent first.
func (r *notificationRepository) FindAll(_ context.Context) ([]*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*entity.Notification, 0, len(r.entries))
	for _, entry := range r.entries {
		clone := *entry
		entries = append(entries, &clone)
	}

	return entries, nil
}

// MarkAllRead flags every entry as read.
func (r *notificationRepository) MarkAllRead(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		entry.Read = true
	}

	return nil
}

// UnreadCount returns the number of unread entries.
func (r *notificationRepository) UnreadCount(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, entry := range r.entries {
		if !entry.Read {
			count++
		}
	}

	return count, nil
}

// seedNotifications returns the demo feed, most recent first.
func seedNotifications(now time.Time) []*entity.Notification {
	return []*entity.Notification{
		{
			ID:        uuid.New(),
			Title:     "New Order Received",
			Message:   "Order #ORD-1287 from Charlie Davis",
			Category:  entity.NotificationOrder,
			Read:      false,
			CreatedAt: now.Add(-5 * time.Minute),
		},
		{
			ID:        uuid.New(),
			Title:     "Delivery Successful",
			Message:   "Order #ORD-1288 reached Bob Smith",
			Category:  entity.NotificationDelivery,
			Read:      true,
			CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID:        uuid.New(),
			Title:     "System Alert",
			Message:   `Inventory for "Salmon" is low (45kg remaining)`,
			Category:  entity.NotificationSystem,
			Read:      true,
			CreatedAt: now.Add(-2 * time.Hour),
		},
	}
}
