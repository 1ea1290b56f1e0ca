package queries

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// GetSalesTotalQueryHandler recomputes totals from the current orders on
// every call.
//
// Example:
//
//	q, _ := NewCustomerSpendingQuery(customerID)
//	resp, err := handler.Handle(ctx, q)
//	fmt.Println(resp.Total) // "150.00"
type GetSalesTotalQueryHandler struct {
	orders     OrderReader
	calculator services.SalesCalculator
}

// NewGetSalesTotalQueryHandler reads orders through orders.
func NewGetSalesTotalQueryHandler(orders OrderReader) GetSalesTotalQueryHandler {
	return GetSalesTotalQueryHandler{
		orders:     orders,
		calculator: services.NewSalesCalculator(),
	}
}

func (h GetSalesTotalQueryHandler) Handle(ctx context.Context, query GetSalesTotalQuery) (GetSalesTotalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesTotalQueryResponse{}, err
	}

	orders, err := h.orders.Find(ctx, query.Criteria())
	if err != nil {
		return GetSalesTotalQueryResponse{}, err
	}

	return GetSalesTotalQueryResponse{
		Total:      h.calculator.Revenue(orders),
		OrderCount: int64(len(orders)),
	}, nil
}
