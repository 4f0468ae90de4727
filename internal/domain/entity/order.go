package entity

import "time"

// OrderStatus tracks an order through the fulfilment pipeline.
// The progression is strictly Pending -> Preparing -> Ready -> Delivered.
type OrderStatus string

const (
	// OrderStatusPending indicates a newly received order.
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusPreparing indicates the kitchen has accepted the order.
	OrderStatusPreparing OrderStatus = "Preparing"
	// OrderStatusReady indicates the order is ready for delivery or pickup.
	OrderStatusReady OrderStatus = "Ready"
	// OrderStatusDelivered indicates the order reached the customer. Terminal.
	OrderStatusDelivered OrderStatus = "Delivered"
)

// orderStatusRank orders the statuses for transition validation.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusPreparing: 1,
	OrderStatusReady:     2,
	OrderStatusDelivered: 3,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusRank[s]

	return ok
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered
}

// Next returns the following status in the pipeline. The second return
// value is false when the status is terminal.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusPending:
		return OrderStatusPreparing, true
	case OrderStatusPreparing:
		return OrderStatusReady, true
	case OrderStatusReady:
		return OrderStatusDelivered, true
	default:
		return s, false
	}
}

// CanTransitionTo reports whether moving to target is a forward move.
// Backward moves and same-status moves are rejected; forward jumps are
// allowed since the dashboard exposes explicit status selection.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[target]
	if !ok {
		return false
	}

	return to > from
}

// Order is a customer order in the admin fulfilment queue. Orders are
// created from seed data or simulated intake and are never deleted;
// only the status advances.
type Order struct {
	ID       string      `json:"id"`        // Order reference, e.g. "ORD-1289".
	Customer string      `json:"customer"`  // Customer display name.
	Items    string      `json:"items"`     // Free-text item summary.
	Total    float64     `json:"total"`     // Order total in the store currency.
	Status   OrderStatus `json:"status"`    // Current fulfilment status.
	PlacedAt time.Time   `json:"placed_at"` // When the order was received.
}
