package services

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// SalesCalculator folds order sets into monetary and count summaries. It is
// independent of storage: callers select the orders, the calculator applies
// the accounting rules.
//
// Business rules:
//   - cancelled orders never contribute to a monetary total
//   - an empty set sums to zero
//
// Example usage:
//
//	calc := services.NewSalesCalculator()
//	total := calc.Revenue(customerOrders) // 150.00 for 100.00 pending + 50.00 delivered + 30.00 cancelled
type SalesCalculator struct{}

// NewSalesCalculator creates a new SalesCalculator instance.
func NewSalesCalculator() SalesCalculator {
	return SalesCalculator{}
}

// Revenue sums the totals of every non-cancelled order.
func (SalesCalculator) Revenue(orders []*order.Order) kernel.Money {
	total := kernel.ZeroMoney()
	for _, o := range orders {
		if o == nil || o.IsCancelled() {
			continue
		}
		total = total.Add(o.Total())
	}
	return total
}

// CountByStatus counts orders per status. Every known status is present in
// the result, with zero when no order has it.
func (SalesCalculator) CountByStatus(orders []*order.Order) map[order.Status]int {
	counts := make(map[order.Status]int, len(order.AllStatuses()))
	for _, s := range order.AllStatuses() {
		counts[s] = 0
	}
	for _, o := range orders {
		if o == nil {
			continue
		}
		counts[o.Status()]++
	}
	return counts
}
