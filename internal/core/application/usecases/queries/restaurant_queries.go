package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const maxTopRestaurants = 100

var (
	ErrGetRestaurantQueryIsNotConstructed = errors.New(
		"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
	)
	ErrListRestaurantsQueryIsNotConstructed = errors.New(
		"ListRestaurantsQuery must be created via one of the NewListRestaurantsQuery constructors",
	)
)

type GetRestaurantQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantQuery rejects an invalid restaurant id.
func NewGetRestaurantQuery(restaurantID kernel.UUID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, err
	}
	return GetRestaurantQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

type ListRestaurantsQuery struct {
	criteria restaurant.Criteria

	guard guard.ConstructorGuard
}

// NewListRestaurantsQuery validates the rating bound and limit of criteria.
func NewListRestaurantsQuery(criteria restaurant.Criteria) (ListRestaurantsQuery, error) {
	if criteria.MinRating != nil {
		if r := *criteria.MinRating; r < restaurant.MinRating || r > restaurant.MaxRating {
			return ListRestaurantsQuery{}, errs.NewValueIsOutOfRangeError("minRating", r, restaurant.MinRating, restaurant.MaxRating)
		}
	}
	if criteria.Limit < 0 {
		return ListRestaurantsQuery{}, errs.NewValueIsOutOfRangeError("limit", criteria.Limit, 0, maxTopRestaurants)
	}
	return ListRestaurantsQuery{criteria: criteria, guard: guard.NewConstructorGuard()}, nil
}

// NewTopRestaurantsQuery lists the n best rated active restaurants.
func NewTopRestaurantsQuery(n int) (ListRestaurantsQuery, error) {
	if n < 1 || n > maxTopRestaurants {
		return ListRestaurantsQuery{}, errs.NewValueIsOutOfRangeError("limit", n, 1, maxTopRestaurants)
	}
	return NewListRestaurantsQuery(restaurant.Criteria{
		ActiveOnly: true,
		SortBy:     restaurant.ByRatingDesc,
		Limit:      n,
	})
}

func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

type RestaurantQueryHandler struct {
	restaurants RestaurantReader
}

// NewRestaurantQueryHandler serves the restaurant queries.
func NewRestaurantQueryHandler(restaurants RestaurantReader) RestaurantQueryHandler {
	return RestaurantQueryHandler{restaurants: restaurants}
}

func (h RestaurantQueryHandler) Get(ctx context.Context, query GetRestaurantQuery) (*restaurant.Restaurant, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.restaurants.Get(ctx, query.restaurantID)
}

func (h RestaurantQueryHandler) List(ctx context.Context, query ListRestaurantsQuery) ([]*restaurant.Restaurant, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.restaurants.Find(ctx, query.criteria)
}

// Categories lists the distinct categories of active restaurants.
func (h RestaurantQueryHandler) Categories(ctx context.Context) ([]string, error) {
	return h.restaurants.Categories(ctx)
}
