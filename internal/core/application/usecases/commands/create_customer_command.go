package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer. Field rules are enforced by
// customer.NewCustomer when the handler builds the aggregate.
type CreateCustomerCommand struct {
	name    string
	email   string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand carries the raw input. Validation happens when the
// customer is built, so a bad email surfaces from Handle.
func NewCreateCustomerCommand(name, email, phone, address string) CreateCustomerCommand {
	return CreateCustomerCommand{
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string    { return c.name }
func (c CreateCustomerCommand) Email() string   { return c.email }
func (c CreateCustomerCommand) Phone() string   { return c.phone }
func (c CreateCustomerCommand) Address() string { return c.address }
