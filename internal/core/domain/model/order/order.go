package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDeliveredOrderCannotBeCancelled is the InvalidState returned by Cancel.
	ErrDeliveredOrderCannotBeCancelled = errs.NewInvalidStateError("cannot cancel an already-delivered order")
)

// Order is a customer's purchase against one restaurant, tracked through the
// delivery lifecycle.
//
// Invariants:
//   - customer, restaurant and creation timestamp are fixed at creation
//   - total is strictly positive
//   - deliveredAt is nil until the order first becomes delivered and is set at most once
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	total           kernel.Money
	deliveryAddress string
	notes           string
	status          Status
	createdAt       time.Time
	deliveredAt     *time.Time

	events []Event
	guard  guard.ConstructorGuard
}

// NewOrder creates a pending order and records EventCreated.
//
// Parameters:
//   - id, customerID, restaurantID: valid identifiers
//   - total: strictly positive amount
//   - deliveryAddress: required, surrounding blanks are trimmed
//   - notes: optional instructions
//   - createdAt: creation timestamp, required
//
// Returns:
//   - *Order: the order in Pending status, without delivery timestamp
//   - error: every validation failure, joined
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID,
//	    kernel.MustParseMoney("100.00"), "Rua A, 10", "", kernel.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id, customerID, restaurantID kernel.UUID,
	total kernel.Money,
	deliveryAddress, notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		notes:  strings.TrimSpace(notes),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setTotal(total),
		o.setDeliveryAddress(deliveryAddress),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.record(Event{Kind: EventCreated, To: Pending, OccurredAt: o.createdAt})
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. No events are recorded.
// It takes the same values as NewOrder plus the persisted status and delivery
// timestamp; a delivered order without a delivery timestamp is rejected.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	total kernel.Money,
	deliveryAddress, notes string,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setTotal(total),
		o.setDeliveryAddress(deliveryAddress),
		o.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if status == Delivered && deliveredAt == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("delivered at", errors.New("delivered order without delivery timestamp"))
	}

	o.status = status
	if deliveredAt != nil {
		t := *deliveredAt
		o.deliveredAt = &t
	}
	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the customer who placed the order. It never changes.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// RestaurantID returns the restaurant the order was placed with. It never changes.
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }

// Total returns the order amount, always strictly positive.
func (o *Order) Total() kernel.Money { return o.total }

// DeliveryAddress returns the address the order goes to.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// Notes returns the free-text instructions, possibly empty.
func (o *Order) Notes() string { return o.notes }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// DeliveredAt returns a copy of the delivery timestamp, or nil.
func (o *Order) DeliveredAt() *time.Time {
	if o.deliveredAt == nil {
		return nil
	}
	t := *o.deliveredAt
	return &t
}

// IsCancelled reports whether the order must be left out of monetary totals.
func (o *Order) IsCancelled() bool {
	return o.status == Cancelled
}

// ChangeStatus moves the order to next, checked against policy. Becoming
// delivered stamps the delivery time with now unless it is already set.
func (o *Order) ChangeStatus(next Status, policy TransitionPolicy, now time.Time) error {
	if err := o.status.ValidateTransition(next, policy); err != nil {
		return err
	}

	if next == Delivered && o.deliveredAt == nil {
		t := now
		o.deliveredAt = &t
	}

	previous := o.status
	o.status = next
	if previous != next {
		o.record(Event{Kind: EventStatusChanged, From: previous, To: next, OccurredAt: now})
	}
	return nil
}

// Cancel moves the order to cancelled. It fails for delivered orders and is
// a no-op for orders already cancelled.
func (o *Order) Cancel(now time.Time) error {
	switch o.status {
	case Delivered:
		return ErrDeliveredOrderCannotBeCancelled
	case Cancelled:
		return nil
	}

	previous := o.status
	o.status = Cancelled
	o.record(Event{Kind: EventCancelled, From: previous, To: Cancelled, OccurredAt: now})
	return nil
}

// Events returns the events recorded since the last ClearEvents.
func (o *Order) Events() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

// ClearEvents drops recorded events once they have been published.
func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) record(e Event) {
	e.OrderID = o.id
	e.CustomerID = o.customerID
	e.RestaurantID = o.restaurantID
	e.Total = o.total
	o.events = append(o.events, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if !total.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("total amount", fmt.Errorf("%s is not greater than 0", total))
	}
	o.total = total
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
