package service

import (
	"context"
)

// OrderPlacedEvent represents a completed checkout to be processed
// downstream (kitchen display, analytics).
type OrderPlacedEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	Reference string  `json:"reference"`
	CartKey   string  `json:"cart_key"`
	ItemCount int     `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Delivery  float64 `json:"delivery"`
	Total     float64 `json:"total"`
	PlacedAt  string  `json:"placed_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order placed event for async processing
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
