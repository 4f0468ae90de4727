package memory

import (
	"context"
	"sync"
	"time"

	"dipto/internal/domain/entity"
	"dipto/internal/domain/repository"
)

type activityRepository struct {
	mu        sync.RWMutex
	retention int
	entries   []*entity.ActivityEntry // Most recent first.
}

// NewActivityRepository creates a bounded activity log seeded with the
// demo entries.
func NewActivityRepository(retention int) repository.ActivityRepository {
	return &activityRepository{
		retention: retention,
		entries:   seedActivity(time.Now()),
	}
}

// Append prepends a new entry, trimming the tail past retention.
func (r *activityRepository) Append(_ context.Context, entry *entity.ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *entry
	r.entries = append([]*entity.ActivityEntry{&clone}, r.entries...)
	if r.retention > 0 && len(r.entries) > r.retention {
		r.entries = r.entries[:r.retention]
	}

	return nil
}

// FindAll retrieves the log, most recent first.
func (r *activityRepository) FindAll(_ context.Context) ([]*entity.ActivityEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*entity.ActivityEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		clone := *entry
		entries = append(entries, &clone)
	}

	return entries, nil
}

// seedActivity returns the demo log, most recent first.
func seedActivity(now time.Time) []*entity.ActivityEntry {
	return []*entity.ActivityEntry{
		{
			Action:    "Updated Menu",
			Actor:     "Admin Dipto",
			Category:  entity.ActivityInfo,
			CreatedAt: now.Add(-2 * time.Minute),
		},
		{
			Action:    "Successful Login",
			Actor:     "Admin Dipto",
			Category:  entity.ActivitySecurity,
			CreatedAt: now.Add(-1 * time.Hour),
		},
	}
}
