package ports

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
// Get, Update and Delete return errs.ObjectNotFoundError for unknown ids.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Update(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
	Delete(ctx context.Context, id kernel.UUID) error
	Find(ctx context.Context, criteria customer.Criteria) ([]*customer.Customer, error)

	// ExistsByEmail reports whether a customer other than exclude uses email.
	// Pass a nil exclude to check every customer.
	ExistsByEmail(ctx context.Context, email string, exclude *kernel.UUID) (bool, error)
}
