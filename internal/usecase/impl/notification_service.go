package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"dipto/internal/domain/repository"
	"dipto/internal/usecase"
	"dipto/internal/util"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// ListNotifications returns the feed with display-ready relative ages.
func (srv *notificationService) ListNotifications(ctx context.Context) ([]*usecase.NotificationView, error) {
	entries, err := srv.notificationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	now := time.Now()
	views := make([]*usecase.NotificationView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, &usecase.NotificationView{
			Notification: entry,
			Time:         util.RelativeTime(entry.CreatedAt, now),
		})
	}

	return views, nil
}

// MarkAllRead flags every feed entry as read.
func (srv *notificationService) MarkAllRead(ctx context.Context) error {
	if err := srv.notificationRepo.MarkAllRead(ctx); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

// UnreadCount returns the badge count of unread entries.
func (srv *notificationService) UnreadCount(ctx context.Context) (int, error) {
	count, err := srv.notificationRepo.UnreadCount(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}
