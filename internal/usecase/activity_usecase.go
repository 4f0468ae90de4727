package usecase

import (
	"context"

	"dipto/internal/domain/entity"
)

// ActivityView is a log entry with its display-ready relative age.
type ActivityView struct {
	*entity.ActivityEntry
	Time string `json:"time"` // Relative age, e.g. "Just now".
}

// ActivityUsecase defines the interface for the admin activity log.
type ActivityUsecase interface {
	// ListActivity returns the log, most recent first.
	ListActivity(ctx context.Context) ([]*ActivityView, error)
}
