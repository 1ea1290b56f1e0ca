package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery counts orders per status, optionally for one customer.
type CountOrdersByStatusQuery struct {
	statuses   []order.Status
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCountOrdersByStatusQuery counts the given statuses, or all of them when
// none is given.
func NewCountOrdersByStatusQuery(statuses ...order.Status) (CountOrdersByStatusQuery, error) {
	if len(statuses) == 0 {
		statuses = order.AllStatuses()
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return CountOrdersByStatusQuery{}, err
		}
	}
	return CountOrdersByStatusQuery{statuses: statuses, guard: guard.NewConstructorGuard()}, nil
}

// ForCustomer narrows the counts to one customer's orders.
func (q CountOrdersByStatusQuery) ForCustomer(customerID kernel.UUID) CountOrdersByStatusQuery {
	q.customerID = &customerID
	return q
}

func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

// CountOrdersByStatusQueryResponse holds one entry per requested status,
// zero included, in lifecycle order.
type CountOrdersByStatusQueryResponse struct {
	Counts []StatusCount
}

type StatusCount struct {
	Status order.Status
	Count  int64
}

// CountOrdersByStatusQueryHandler reads the matching orders once and folds
// them into per-status counts.
type CountOrdersByStatusQueryHandler struct {
	orders     OrderReader
	calculator services.SalesCalculator
}

// NewCountOrdersByStatusQueryHandler reads orders through orders.
func NewCountOrdersByStatusQueryHandler(orders OrderReader) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{
		orders:     orders,
		calculator: services.NewSalesCalculator(),
	}
}

func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (CountOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountOrdersByStatusQueryResponse{}, err
	}

	orders, err := h.orders.Find(ctx, order.Criteria{
		CustomerID: query.customerID,
		Statuses:   query.statuses,
	})
	if err != nil {
		return CountOrdersByStatusQueryResponse{}, err
	}

	counts := h.calculator.CountByStatus(orders)
	resp := CountOrdersByStatusQueryResponse{Counts: make([]StatusCount, 0, len(query.statuses))}
	for _, s := range query.statuses {
		resp.Counts = append(resp.Counts, StatusCount{Status: s, Count: int64(counts[s])})
	}
	return resp, nil
}

// Total returns the sum of all counts.
func (r CountOrdersByStatusQueryResponse) Total() int64 {
	var total int64
	for _, c := range r.Counts {
		total += c.Count
	}
	return total
}
