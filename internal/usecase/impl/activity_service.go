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

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(
	activityRepo repository.ActivityRepository,
	logger *slog.Logger,
) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// ListActivity returns the log with display-ready relative ages.
func (srv *activityService) ListActivity(ctx context.Context) ([]*usecase.ActivityView, error) {
	entries, err := srv.activityRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity")
	}

	now := time.Now()
	views := make([]*usecase.ActivityView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, &usecase.ActivityView{
			ActivityEntry: entry,
			Time:          util.RelativeTime(entry.CreatedAt, now),
		})
	}

	return views, nil
}
