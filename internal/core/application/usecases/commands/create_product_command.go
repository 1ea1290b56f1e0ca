package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

type CreateProductCommand struct {
	restaurantID kernel.UUID
	details      product.Details

	guard guard.ConstructorGuard
}

// NewCreateProductCommand rejects an invalid restaurant id.
func NewCreateProductCommand(restaurantID kernel.UUID, details product.Details) (CreateProductCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return CreateProductCommand{}, errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}

	return CreateProductCommand{
		restaurantID: restaurantID,
		details:      details,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreateProductCommand) Details() product.Details  { return c.details }
