package entity

import "time"

// ActivityCategory classifies an activity log entry.
type ActivityCategory string

const (
	// ActivityInfo marks routine operational actions.
	ActivityInfo ActivityCategory = "info"
	// ActivitySecurity marks authentication-related actions.
	ActivitySecurity ActivityCategory = "security"
)

// ActivityEntry is one row in the append-only admin activity log,
// most recent first. Entries are never mutated or removed individually.
type ActivityEntry struct {
	Action    string           `json:"action"`     // What happened, e.g. "Restocked Salmon".
	Actor     string           `json:"actor"`      // Who did it.
	Category  ActivityCategory `json:"category"`   // Entry classification.
	CreatedAt time.Time        `json:"created_at"` // When it happened.
}
