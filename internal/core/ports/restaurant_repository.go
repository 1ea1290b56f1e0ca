package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants.
// Get, Update and Delete return errs.ObjectNotFoundError for unknown ids.
type RestaurantRepository interface {
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
	Delete(ctx context.Context, id kernel.UUID) error
	Find(ctx context.Context, criteria restaurant.Criteria) ([]*restaurant.Restaurant, error)

	// Categories returns the distinct categories of active restaurants, sorted.
	Categories(ctx context.Context) ([]string, error)
}
