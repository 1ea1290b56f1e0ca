package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
	"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
)

type DeleteRestaurantCommand struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRestaurantCommand rejects an invalid restaurant id.
func NewDeleteRestaurantCommand(restaurantID kernel.UUID) (DeleteRestaurantCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return DeleteRestaurantCommand{}, err
	}
	return DeleteRestaurantCommand{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

func (c DeleteRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }
