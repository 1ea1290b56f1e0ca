package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

type CreateRestaurantCommand struct {
	details restaurant.Details

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand wraps the restaurant details.
func NewCreateRestaurantCommand(details restaurant.Details) CreateRestaurantCommand {
	return CreateRestaurantCommand{details: details, guard: guard.NewConstructorGuard()}
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) Details() restaurant.Details { return c.details }
