// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, the directory resolver and the
// outbound event and idempotency capabilities.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes of an existing order.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Find returns the orders matching criteria, sorted and limited as it describes.
	//
	// Example:
	//   customerID := c.ID()
	//   latest, err := repo.Find(ctx, order.Criteria{CustomerID: &customerID, Limit: 5})
	Find(ctx context.Context, criteria order.Criteria) ([]*order.Order, error)
}
