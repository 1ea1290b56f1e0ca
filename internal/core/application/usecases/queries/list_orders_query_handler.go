package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

type ListOrdersQueryHandler struct {
	orders OrderReader
}

// NewListOrdersQueryHandler reads orders through orders.
func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.Find(ctx, query.Criteria())
}
