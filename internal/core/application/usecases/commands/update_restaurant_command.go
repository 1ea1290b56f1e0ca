package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateRestaurantCommandIsNotConstructed = errors.New(
	"UpdateRestaurantCommand must be created via NewUpdateRestaurantCommand constructor",
)

type UpdateRestaurantCommand struct {
	restaurantID kernel.UUID
	patch        restaurant.Patch

	guard guard.ConstructorGuard
}

// NewUpdateRestaurantCommand pairs a restaurant id with the fields to change.
func NewUpdateRestaurantCommand(restaurantID kernel.UUID, patch restaurant.Patch) (UpdateRestaurantCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return UpdateRestaurantCommand{}, err
	}

	return UpdateRestaurantCommand{
		restaurantID: restaurantID,
		patch:        patch,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantCommandIsNotConstructed)
}

func (c UpdateRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c UpdateRestaurantCommand) Patch() restaurant.Patch   { return c.patch }
