package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
)

type GetCustomerQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery rejects an invalid customer id.
func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

type ListCustomersQuery struct {
	criteria customer.Criteria

	guard guard.ConstructorGuard
}

// NewListCustomersQuery lists the customers matching criteria.
func NewListCustomersQuery(criteria customer.Criteria) ListCustomersQuery {
	return ListCustomersQuery{criteria: criteria, guard: guard.NewConstructorGuard()}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

type CustomerQueryHandler struct {
	customers CustomerReader
}

// NewCustomerQueryHandler serves both customer queries.
func NewCustomerQueryHandler(customers CustomerReader) CustomerQueryHandler {
	return CustomerQueryHandler{customers: customers}
}

func (h CustomerQueryHandler) Get(ctx context.Context, query GetCustomerQuery) (*customer.Customer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.customers.Get(ctx, query.customerID)
}

func (h CustomerQueryHandler) List(ctx context.Context, query ListCustomersQuery) ([]*customer.Customer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.customers.Find(ctx, query.criteria)
}
