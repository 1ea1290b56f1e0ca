package commands

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const idempotencyKeyMaxLength = 255

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, restaurantID,
//	    kernel.MustParseMoney("100.00"), "Rua A, 10", "ring twice", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	total           kernel.Money
	deliveryAddress string
	notes           string
	idempotencyKey  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the boundary constraints of an order
// request. An empty idempotencyKey disables replay protection.
func NewCreateOrderCommand(
	customerID, restaurantID kernel.UUID,
	total kernel.Money,
	deliveryAddress, notes, idempotencyKey string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setTotal(total),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID   { return c.customerID }
func (c CreateOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreateOrderCommand) Total() kernel.Money       { return c.total }
func (c CreateOrderCommand) DeliveryAddress() string   { return c.deliveryAddress }
func (c CreateOrderCommand) Notes() string             { return c.notes }
func (c CreateOrderCommand) IdempotencyKey() string    { return c.idempotencyKey }

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setTotal(total kernel.Money) error {
	if !total.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("total amount", fmt.Errorf("%s is not greater than 0", total))
	}
	c.total = total
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setIdempotencyKey(key string) error {
	key = strings.TrimSpace(key)
	if len(key) > idempotencyKeyMaxLength {
		return errs.NewValueIsOutOfRangeError("idempotency key length", len(key), 0, idempotencyKeyMaxLength)
	}
	c.idempotencyKey = key
	return nil
}
