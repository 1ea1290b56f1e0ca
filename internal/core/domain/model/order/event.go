package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// EventKind names a fact recorded by the Order aggregate.
type EventKind string

const (
	EventCreated       EventKind = "order.created"
	EventStatusChanged EventKind = "order.status_changed"
	EventCancelled     EventKind = "order.cancelled"
)

// Event is a change of an order, published after the unit of work that
// produced it commits. From is Unknown for EventCreated.
type Event struct {
	Kind         EventKind
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	From         Status
	To           Status
	Total        kernel.Money
	OccurredAt   time.Time
}
