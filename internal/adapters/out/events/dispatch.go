// Package events hands the events recorded on order aggregates to an
// OrderEventPublisher once the transaction that produced them has committed.
package events

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/rs/zerolog"
)

// Nop discards every event. It stands in when no broker is configured.
type Nop struct{}

var _ ports.OrderEventPublisher = Nop{}

func (Nop) Publish(context.Context, ...order.Event) error { return nil }

// Drain publishes and clears the events of every tracked order. Publish
// failures are logged; the committed state is not affected by them.
func Drain(ctx context.Context, publisher ports.OrderEventPublisher, logger zerolog.Logger, tracked []*order.Order) {
	for _, o := range tracked {
		pending := o.Events()
		if len(pending) == 0 {
			continue
		}
		o.ClearEvents()

		if publisher == nil {
			continue
		}
		if err := publisher.Publish(ctx, pending...); err != nil {
			logger.Error().Err(err).
				Str("order_id", o.ID().String()).
				Int("events", len(pending)).
				Msg("failed to publish order events")
		}
	}
}
