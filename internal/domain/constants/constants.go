// Package constants defines shared domain constants.
package constants

// Pub/Sub provider types
const (
	// PubSubProviderLocal routes events to a local HTTP endpoint for development
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub
	PubSubProviderGoogle = "google"
)

// Order event attributes
const (
	// OrderEventType identifies order placed events on the wire
	OrderEventType = "order.placed"
)
