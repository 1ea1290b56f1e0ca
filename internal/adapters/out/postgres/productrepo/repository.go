package productrepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgutil"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.ProductRepository = (*GormProductRepository)(nil)

type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository runs every statement on db, which may be a transaction.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID())
	}
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "product", id)
	}
	return toDomain(dto)
}

func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return pgutil.Deleted(r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes()), "product", id)
}

// Find orders by price when a price bound is set, by name otherwise.
func (r *GormProductRepository) Find(ctx context.Context, criteria product.Criteria) ([]*product.Product, error) {
	q := r.db.WithContext(ctx).Model(&ProductDTO{})
	if criteria.RestaurantID != nil {
		q = q.Where("restaurant_id = ?", criteria.RestaurantID.Bytes())
	}
	if criteria.Category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", criteria.Category)
	}
	if criteria.NameContains != "" {
		q = q.Where("LOWER(name) LIKE ?", pgutil.ContainsPattern(criteria.NameContains))
	}
	if criteria.AvailableOnly {
		q = q.Where("available")
	}
	if criteria.MinPrice != nil {
		q = q.Where("price >= ?", criteria.MinPrice.Decimal())
	}
	if criteria.MaxPrice != nil {
		q = q.Where("price <= ?", criteria.MaxPrice.Decimal())
	}

	if criteria.ByPrice() {
		q = q.Order("price ASC")
	}

	var dtos []ProductDTO
	if err := q.Order(`name COLLATE "C" ASC, id ASC`).Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// Categories lists the distinct categories of available products.
func (r *GormProductRepository) Categories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("available").
		Distinct("category").
		Order(`category COLLATE "C"`).
		Pluck("category", &categories).Error
	return categories, err
}
