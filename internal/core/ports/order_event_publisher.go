package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order events to interested parties outside
// the service. Implementations must be safe for concurrent use.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
