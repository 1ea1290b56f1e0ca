package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetSalesInPeriod handles GET /api/v1/reports/sales.
func (s *Server) GetSalesInPeriod(ctx echo.Context, params PeriodParams) error {
	query, err := queries.NewSalesInPeriodQuery(params.From, params.To)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.salesTotal(ctx, query)
}

// GetStatusCounts handles GET /api/v1/reports/status-counts. Without a
// status filter every status is reported, zero counts included.
func (s *Server) GetStatusCounts(ctx echo.Context, params StatusCountsParams) error {
	statuses, err := parseStatuses(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	customerID, err := optionalKernelID(params.CustomerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewCountOrdersByStatusQuery(statuses...)
	if err != nil {
		return s.fail(ctx, err)
	}
	if customerID != nil {
		query = query.ForCustomer(*customerID)
	}

	resp, err := s.h.StatusCounts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toStatusCounts(resp))
}

func (s *Server) salesTotal(ctx echo.Context, query queries.GetSalesTotalQuery) error {
	resp, err := s.h.SalesTotal.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toSalesTotal(resp))
}
