package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationCategory classifies a dashboard notification.
type NotificationCategory string

const (
	// NotificationOrder marks order intake and acceptance events.
	NotificationOrder NotificationCategory = "order"
	// NotificationDelivery marks completed delivery events.
	NotificationDelivery NotificationCategory = "delivery"
	// NotificationSystem marks inventory and system events.
	NotificationSystem NotificationCategory = "system"
)

// Notification is one entry in the admin notification feed. Entries are
// prepended (most recent first) and only ever mutated by marking read.
type Notification struct {
	ID        uuid.UUID            `json:"id"`         // Generated identifier.
	Title     string               `json:"title"`      // Short headline.
	Message   string               `json:"message"`    // Human-readable detail.
	Category  NotificationCategory `json:"category"`   // Event classification.
	Read      bool                 `json:"read"`       // Whether the admin has seen it.
	CreatedAt time.Time            `json:"created_at"` // When the event happened.
}
