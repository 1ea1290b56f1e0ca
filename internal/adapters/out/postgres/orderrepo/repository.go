package orderrepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgutil"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects orders whose events are published after commit.
type aggregateTracker interface {
	TrackAggregate(ctx context.Context, id kernel.UUID, aggregate any)
}

// NewGormOrderRepository runs every statement on db, which may be a
// transaction. Added and updated orders are reported to tracker so their
// events can be published.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(ctx, aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every column of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(ctx, aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "order", id)
	}

	return toDomain(dto)
}

// Find translates the criteria into one SELECT.
func (r *GormOrderRepository) Find(ctx context.Context, criteria order.Criteria) ([]*order.Order, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	q := where(r.db.WithContext(ctx).Model(&OrderDTO{}), criteria).Order(orderBy(criteria.SortBy))
	if criteria.Limit > 0 {
		q = q.Limit(criteria.Limit)
	}

	var dtos []OrderDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func where(q *gorm.DB, c order.Criteria) *gorm.DB {
	if c.CustomerID != nil {
		q = q.Where("customer_id = ?", c.CustomerID.Bytes())
	}
	if c.RestaurantID != nil {
		q = q.Where("restaurant_id = ?", c.RestaurantID.Bytes())
	}
	if len(c.Statuses) > 0 {
		names := make([]string, 0, len(c.Statuses))
		for _, s := range c.Statuses {
			names = append(names, s.String())
		}
		q = q.Where("status IN ?", names)
	}
	if c.CreatedFrom != nil {
		q = q.Where("created_at >= ?", c.CreatedFrom.UTC())
	}
	if c.CreatedTo != nil {
		q = q.Where("created_at <= ?", c.CreatedTo.UTC())
	}
	if c.DeliveredFrom != nil || c.DeliveredTo != nil {
		q = q.Where("delivered_at IS NOT NULL")
	}
	if c.DeliveredFrom != nil {
		q = q.Where("delivered_at >= ?", c.DeliveredFrom.UTC())
	}
	if c.DeliveredTo != nil {
		q = q.Where("delivered_at <= ?", c.DeliveredTo.UTC())
	}
	if c.MinTotal != nil {
		q = q.Where("total >= ?", c.MinTotal.Decimal())
	}
	return q
}

func orderBy(s order.SortOrder) string {
	switch s {
	case order.OldestFirst:
		return "created_at ASC, id ASC"
	case order.LatestDeliveredFirst:
		return "delivered_at DESC NULLS LAST, id ASC"
	case order.HighestTotalFirst:
		return "total DESC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}
