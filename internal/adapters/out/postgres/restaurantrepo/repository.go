package restaurantrepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgutil"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.RestaurantRepository = (*GormRestaurantRepository)(nil)

type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository runs every statement on db, which may be a transaction.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", aggregate.ID())
	}
	return nil
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "restaurant", id)
	}
	return toDomain(dto)
}

func (r *GormRestaurantRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return pgutil.Deleted(r.db.WithContext(ctx).Delete(&RestaurantDTO{}, "id = ?", id.Bytes()), "restaurant", id)
}

func (r *GormRestaurantRepository) Find(ctx context.Context, criteria restaurant.Criteria) ([]*restaurant.Restaurant, error) {
	q := r.db.WithContext(ctx).Model(&RestaurantDTO{})
	if criteria.Category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", criteria.Category)
	}
	if criteria.NameContains != "" {
		q = q.Where("LOWER(name) LIKE ?", pgutil.ContainsPattern(criteria.NameContains))
	}
	if criteria.ActiveOnly {
		q = q.Where("active")
	}
	if criteria.MinRating != nil {
		q = q.Where("rating >= ?", *criteria.MinRating)
	}

	if criteria.SortBy == restaurant.ByRatingDesc {
		q = q.Order("rating DESC NULLS LAST")
	}
	q = q.Order(`name COLLATE "C" ASC, id ASC`)
	if criteria.Limit > 0 {
		q = q.Limit(criteria.Limit)
	}

	var dtos []RestaurantDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		x, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, x)
	}
	return result, nil
}

// Categories lists the distinct categories of active restaurants.
func (r *GormRestaurantRepository) Categories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := r.db.WithContext(ctx).Model(&RestaurantDTO{}).
		Where("active").
		Distinct("category").
		Order(`category COLLATE "C"`).
		Pluck("category", &categories).Error
	return categories, err
}
