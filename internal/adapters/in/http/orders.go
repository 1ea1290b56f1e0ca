package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var sortOrders = map[string]order.SortOrder{
	"newest":    order.NewestFirst,
	"oldest":    order.OldestFirst,
	"delivered": order.LatestDeliveredFirst,
	"total":     order.HighestTotalFirst,
}

// ListOrders handles GET /api/v1/orders. pending=true restricts the result
// to orders that are neither delivered nor cancelled unless a status is given.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	customerID, err := optionalKernelID(params.CustomerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	restaurantID, err := optionalKernelID(params.RestaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}
	statuses, err := parseStatuses(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if statuses == nil && deref(params.Pending) {
		statuses = order.OpenStatuses()
	}
	minTotal, err := parseOptionalMoney(params.MinTotal)
	if err != nil {
		return s.fail(ctx, err)
	}

	criteria := order.Criteria{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Statuses:     statuses,
		CreatedFrom:  params.From,
		CreatedTo:    params.To,
		MinTotal:     minTotal,
		Limit:        deref(params.Limit),
	}
	switch {
	case params.Sort != nil:
		sortBy, ok := sortOrders[*params.Sort]
		if !ok {
			return s.fail(ctx, errs.NewValueIsInvalidError("sort"))
		}
		criteria.SortBy = sortBy
	case minTotal != nil:
		criteria.SortBy = order.HighestTotalFirst
	}

	query, err := queries.NewListOrdersQuery(criteria)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.listOrders(ctx, query)
}

// CreateOrder handles POST /api/v1/orders. A repeated Idempotency-Key
// returns the order of the first request with 200 instead of 201.
func (s *Server) CreateOrder(ctx echo.Context, idempotencyKey string) error {
	var body NewOrder
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	customerID, err := kernelID(body.CustomerID)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("customerId", err))
	}
	restaurantID, err := kernelID(body.RestaurantID)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("restaurantId", err))
	}
	total, err := kernel.ParseMoney(body.TotalAmount)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID, restaurantID, total, body.DeliveryAddress, body.Notes, idempotencyKey,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	code := http.StatusCreated
	if result.Replayed {
		code = http.StatusOK
	}
	return ctx.JSON(code, toOrder(result.Order))
}

// ListDeliveredOrders handles GET /api/v1/orders/delivered.
func (s *Server) ListDeliveredOrders(ctx echo.Context, params PeriodParams) error {
	query, err := queries.NewDeliveredOrdersQuery(params.From, params.To)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.listOrders(ctx, query)
}

func (s *Server) GetOrder(ctx echo.Context, id uuid.UUID) error {
	o, err := s.getOrder(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{id}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, id uuid.UUID) error {
	var body StatusChange
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	orderID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// CancelOrder handles PATCH /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id uuid.UUID) error {
	orderID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) getOrder(ctx echo.Context, id uuid.UUID) (*order.Order, error) {
	orderID, err := kernelID(id)
	if err != nil {
		return nil, err
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return nil, err
	}
	return s.h.GetOrder.Handle(ctx.Request().Context(), query)
}

func (s *Server) listOrders(ctx echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(orders, toOrder))
}

// parseStatuses turns the optional status filter into a one-element set.
func parseStatuses(status *string) ([]order.Status, error) {
	if status == nil {
		return nil, nil
	}
	s, err := order.ParseStatus(*status)
	if err != nil {
		return nil, err
	}
	return []order.Status{s}, nil
}
