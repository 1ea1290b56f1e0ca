package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via one of the NewListOrdersQuery constructors",
)

// ListOrdersQuery selects orders by an order.Criteria. The named
// constructors cover the common listings and fix their ordering.
//
// Example:
//
//	q, err := NewListOrdersQuery(order.Criteria{
//	    CustomerID: &customerID,
//	    Statuses:   []order.Status{order.Delivered},
//	})
//	orders, err := handler.Handle(ctx, q) // most recent first
type ListOrdersQuery struct {
	criteria order.Criteria

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts any valid criteria.
func NewListOrdersQuery(criteria order.Criteria) (ListOrdersQuery, error) {
	if err := criteria.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{criteria: criteria, guard: guard.NewConstructorGuard()}, nil
}

// NewPendingOrdersQuery lists every order that is neither delivered nor cancelled.
func NewPendingOrdersQuery() ListOrdersQuery {
	q, _ := NewListOrdersQuery(order.Criteria{Statuses: order.OpenStatuses()})
	return q
}

// NewDeliveredOrdersQuery lists orders delivered within [from, to], most
// recently delivered first.
func NewDeliveredOrdersQuery(from, to time.Time) (ListOrdersQuery, error) {
	return NewListOrdersQuery(order.Criteria{
		DeliveredFrom: &from,
		DeliveredTo:   &to,
		SortBy:        order.LatestDeliveredFirst,
	})
}

// NewLatestCustomerOrdersQuery lists the n most recent orders of a customer.
func NewLatestCustomerOrdersQuery(customerID kernel.UUID, n int) (ListOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if n < 1 || n > order.MaxLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", n, 1, order.MaxLimit)
	}
	return NewListOrdersQuery(order.Criteria{CustomerID: &customerID, Limit: n})
}

// NewOrdersAboveValueQuery lists orders whose total is at least minTotal,
// highest total first.
func NewOrdersAboveValueQuery(minTotal kernel.Money) (ListOrdersQuery, error) {
	return NewListOrdersQuery(order.Criteria{MinTotal: &minTotal, SortBy: order.HighestTotalFirst})
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Criteria() order.Criteria { return q.criteria }
