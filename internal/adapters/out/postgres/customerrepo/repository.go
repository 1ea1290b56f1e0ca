package customerrepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/pgutil"
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.CustomerRepository = (*GormCustomerRepository)(nil)

type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository runs every statement on db, which may be a transaction.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add inserts a customer. A taken email fails with errs.InvalidStateError.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return duplicateEmail(r.db.WithContext(ctx).Create(&dto).Error, dto.Email)
}

func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if err := duplicateEmail(result.Error, dto.Email); err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.ID())
	}
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "customer", id)
	}
	return toDomain(dto)
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return pgutil.Deleted(r.db.WithContext(ctx).Delete(&CustomerDTO{}, "id = ?", id.Bytes()), "customer", id)
}

func (r *GormCustomerRepository) Find(ctx context.Context, criteria customer.Criteria) ([]*customer.Customer, error) {
	q := r.db.WithContext(ctx).Model(&CustomerDTO{})
	if criteria.NameContains != "" {
		q = q.Where("LOWER(name) LIKE ?", pgutil.ContainsPattern(criteria.NameContains))
	}
	if criteria.Email != "" {
		q = q.Where("email = ?", customer.NormalizeEmail(criteria.Email))
	}
	if criteria.ActiveOnly {
		q = q.Where("active")
	}

	var dtos []CustomerDTO
	if err := q.Order(`name COLLATE "C" ASC, id ASC`).Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *GormCustomerRepository) ExistsByEmail(ctx context.Context, email string, exclude *kernel.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("email = ?", customer.NormalizeEmail(email))
	if exclude != nil {
		q = q.Where("id <> ?", exclude.Bytes())
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func duplicateEmail(err error, email string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewInvalidStateErrorWithCause("email already in use: "+email, err)
	}
	return err
}
