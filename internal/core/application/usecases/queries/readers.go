// Package queries contains read operations. Handlers never modify state and
// run outside a transaction.
package queries

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/restaurant"
)

// Read-side views of the repositories. Each handler asks only for what it reads.
type (
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		Find(ctx context.Context, criteria order.Criteria) ([]*order.Order, error)
	}

	CustomerReader interface {
		Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
		Find(ctx context.Context, criteria customer.Criteria) ([]*customer.Customer, error)
	}

	RestaurantReader interface {
		Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
		Find(ctx context.Context, criteria restaurant.Criteria) ([]*restaurant.Restaurant, error)
		Categories(ctx context.Context) ([]string, error)
	}

	ProductReader interface {
		Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
		Find(ctx context.Context, criteria product.Criteria) ([]*product.Product, error)
		Categories(ctx context.Context) ([]string, error)
	}
)
