package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetSalesTotalQueryIsNotConstructed = errors.New(
	"GetSalesTotalQuery must be created via one of the NewSalesTotal constructors",
)

// GetSalesTotalQuery sums order totals over a scope. Cancelled orders never
// count, and an empty scope sums to zero.
type GetSalesTotalQuery struct {
	criteria order.Criteria

	guard guard.ConstructorGuard
}

// NewCustomerSpendingQuery scopes the sum to one customer's orders.
func NewCustomerSpendingQuery(customerID kernel.UUID) (GetSalesTotalQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetSalesTotalQuery{}, err
	}
	return newSalesTotalQuery(order.Criteria{CustomerID: &customerID}), nil
}

// NewRestaurantSalesQuery scopes the sum to one restaurant's orders.
func NewRestaurantSalesQuery(restaurantID kernel.UUID) (GetSalesTotalQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetSalesTotalQuery{}, err
	}
	return newSalesTotalQuery(order.Criteria{RestaurantID: &restaurantID}), nil
}

// NewSalesInPeriodQuery scopes the sum to orders created within [from, to].
func NewSalesInPeriodQuery(from, to time.Time) (GetSalesTotalQuery, error) {
	if from.IsZero() || to.IsZero() {
		return GetSalesTotalQuery{}, errs.NewValueIsRequiredError("period")
	}
	criteria := order.Criteria{CreatedFrom: &from, CreatedTo: &to}
	if err := criteria.Validate(); err != nil {
		return GetSalesTotalQuery{}, err
	}
	return newSalesTotalQuery(criteria), nil
}

func newSalesTotalQuery(criteria order.Criteria) GetSalesTotalQuery {
	return GetSalesTotalQuery{criteria: criteria, guard: guard.NewConstructorGuard()}
}

func (q GetSalesTotalQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesTotalQueryIsNotConstructed)
}

func (q GetSalesTotalQuery) Criteria() order.Criteria { return q.criteria }

// GetSalesTotalQueryResponse carries the sum and the number of orders in
// scope. OrderCount includes cancelled orders.
type GetSalesTotalQueryResponse struct {
	Total      kernel.Money
	OrderCount int64
}
