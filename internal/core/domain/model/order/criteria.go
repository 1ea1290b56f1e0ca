package order

import (
	"errors"
	"sort"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// SortOrder selects the ordering of query results.
type SortOrder int

const (
	// NewestFirst orders by creation timestamp, most recent first.
	NewestFirst SortOrder = iota
	// OldestFirst orders by creation timestamp, oldest first.
	OldestFirst
	// LatestDeliveredFirst orders by delivery timestamp, most recent first.
	LatestDeliveredFirst
	// HighestTotalFirst orders by total amount, highest first.
	HighestTotalFirst
)

// MaxLimit bounds the Limit of a Criteria.
const MaxLimit = 1000

// Criteria describes an order query independently of the storage backend.
// Zero-valued fields do not filter. Time bounds and MinTotal are inclusive.
// Ties are broken by id so results are deterministic.
type Criteria struct {
	CustomerID    *kernel.UUID
	RestaurantID  *kernel.UUID
	Statuses      []Status
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	DeliveredFrom *time.Time
	DeliveredTo   *time.Time
	MinTotal      *kernel.Money
	SortBy        SortOrder
	Limit         int
}

// Validate rejects unknown statuses, inverted ranges and bad limits.
func (c Criteria) Validate() error {
	var result []error
	for _, s := range c.Statuses {
		result = append(result, s.Validate())
	}
	if c.CreatedFrom != nil && c.CreatedTo != nil && c.CreatedFrom.After(*c.CreatedTo) {
		result = append(result, errs.NewValueIsInvalidErrorWithCause("period", errors.New("start is after end")))
	}
	if c.DeliveredFrom != nil && c.DeliveredTo != nil && c.DeliveredFrom.After(*c.DeliveredTo) {
		result = append(result, errs.NewValueIsInvalidErrorWithCause("delivery period", errors.New("start is after end")))
	}
	if c.Limit < 0 || c.Limit > MaxLimit {
		result = append(result, errs.NewValueIsOutOfRangeError("limit", c.Limit, 0, MaxLimit))
	}
	if c.SortBy < NewestFirst || c.SortBy > HighestTotalFirst {
		result = append(result, errs.NewValueIsInvalidError("sort"))
	}
	return errors.Join(result...)
}

// Matches reports whether o satisfies every filter of c.
func (c Criteria) Matches(o *Order) bool {
	if c.CustomerID != nil && !o.customerID.IsEqual(*c.CustomerID) {
		return false
	}
	if c.RestaurantID != nil && !o.restaurantID.IsEqual(*c.RestaurantID) {
		return false
	}
	if len(c.Statuses) > 0 && !containsStatus(c.Statuses, o.status) {
		return false
	}
	if c.CreatedFrom != nil && o.createdAt.Before(*c.CreatedFrom) {
		return false
	}
	if c.CreatedTo != nil && o.createdAt.After(*c.CreatedTo) {
		return false
	}
	if c.DeliveredFrom != nil || c.DeliveredTo != nil {
		if o.deliveredAt == nil {
			return false
		}
		if c.DeliveredFrom != nil && o.deliveredAt.Before(*c.DeliveredFrom) {
			return false
		}
		if c.DeliveredTo != nil && o.deliveredAt.After(*c.DeliveredTo) {
			return false
		}
	}
	if c.MinTotal != nil && o.total.Cmp(*c.MinTotal) < 0 {
		return false
	}
	return true
}

// Apply filters, sorts and limits orders in memory. The input is not modified.
func (c Criteria) Apply(orders []*Order) []*Order {
	result := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if c.Matches(o) {
			result = append(result, o)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return c.less(result[i], result[j])
	})

	if c.Limit > 0 && len(result) > c.Limit {
		result = result[:c.Limit]
	}
	return result
}

func (c Criteria) less(a, b *Order) bool {
	switch c.SortBy {
	case OldestFirst:
		if !a.createdAt.Equal(b.createdAt) {
			return a.createdAt.Before(b.createdAt)
		}
	case LatestDeliveredFirst:
		ad, bd := a.deliveredAt, b.deliveredAt
		switch {
		case ad != nil && bd == nil:
			return true
		case ad == nil && bd != nil:
			return false
		case ad != nil && bd != nil && !ad.Equal(*bd):
			return ad.After(*bd)
		}
	case HighestTotalFirst:
		if cmp := a.total.Cmp(b.total); cmp != 0 {
			return cmp > 0
		}
	default:
		if !a.createdAt.Equal(b.createdAt) {
			return a.createdAt.After(b.createdAt)
		}
	}
	return a.id.String() < b.id.String()
}

func containsStatus(statuses []Status, s Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}
