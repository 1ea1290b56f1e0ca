package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(ctx echo.Context, params ListCustomersParams) error {
	query := queries.NewListCustomersQuery(customer.Criteria{
		NameContains: deref(params.Name),
		Email:        deref(params.Email),
		ActiveOnly:   deref(params.Active),
	})
	customers, err := s.h.Customers.List(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(customers, toCustomer))
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	cmd := commands.NewCreateCustomerCommand(body.Name, body.Email, body.Phone, body.Address)
	c, err := s.h.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toCustomer(c))
}

// GetCustomer handles GET /api/v1/customers/{id}.
func (s *Server) GetCustomer(ctx echo.Context, id uuid.UUID) error {
	customerID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	c, err := s.h.Customers.Get(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCustomer(c))
}

// UpdateCustomer handles PUT /api/v1/customers/{id}. Absent fields keep
// their stored value.
func (s *Server) UpdateCustomer(ctx echo.Context, id uuid.UUID) error {
	var body CustomerPatch
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	customerID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewUpdateCustomerCommand(customerID, customer.Patch{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Address: body.Address,
		Active:  body.Active,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	c, err := s.h.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCustomer(c))
}

// DeleteCustomer handles DELETE /api/v1/customers/{id}.
func (s *Server) DeleteCustomer(ctx echo.Context, id uuid.UUID) error {
	customerID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListCustomerOrders handles GET /api/v1/customers/{id}/orders, most recent
// first.
func (s *Server) ListCustomerOrders(ctx echo.Context, id uuid.UUID, params CustomerOrdersParams) error {
	customerID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	statuses, err := parseStatuses(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListOrdersQuery(order.Criteria{
		CustomerID:  &customerID,
		Statuses:    statuses,
		CreatedFrom: params.From,
		CreatedTo:   params.To,
		Limit:       deref(params.Limit),
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.listOrders(ctx, query)
}

// GetCustomerSpending handles GET /api/v1/customers/{id}/spending.
func (s *Server) GetCustomerSpending(ctx echo.Context, id uuid.UUID) error {
	customerID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewCustomerSpendingQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.salesTotal(ctx, query)
}
