package ports

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"
)

// Resolver looks up the directory records an order or product depends on.
// Both methods return errs.ObjectNotFoundError for unknown ids.
type Resolver interface {
	ResolveCustomer(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
	ResolveRestaurant(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
