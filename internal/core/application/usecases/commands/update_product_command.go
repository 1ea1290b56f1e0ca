package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

type UpdateProductCommand struct {
	productID kernel.UUID
	patch     product.Patch

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand pairs a product id with the fields to change.
func NewUpdateProductCommand(productID kernel.UUID, patch product.Patch) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID: productID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() kernel.UUID { return c.productID }
func (c UpdateProductCommand) Patch() product.Patch   { return c.patch }
