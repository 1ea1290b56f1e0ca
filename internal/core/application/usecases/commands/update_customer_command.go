package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand partially updates a customer. Absent patch fields
// are left unchanged.
type UpdateCustomerCommand struct {
	customerID kernel.UUID
	patch      customer.Patch

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand pairs a customer id with the fields to change.
func NewUpdateCustomerCommand(customerID kernel.UUID, patch customer.Patch) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		patch:      patch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c UpdateCustomerCommand) Patch() customer.Patch   { return c.patch }
