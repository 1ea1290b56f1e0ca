package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
// Get, Update and Delete return errs.ObjectNotFoundError for unknown ids.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
	Delete(ctx context.Context, id kernel.UUID) error
	Find(ctx context.Context, criteria product.Criteria) ([]*product.Product, error)

	// Categories returns the distinct categories of available products, sorted.
	Categories(ctx context.Context) ([]string, error)
}
