package queries

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

type GetProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductQuery rejects an invalid product id.
func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ListProductsQuery covers the menu of a restaurant, category listings and
// price range searches.
type ListProductsQuery struct {
	criteria product.Criteria

	guard guard.ConstructorGuard
}

// NewListProductsQuery rejects a price range whose minimum exceeds its maximum.
func NewListProductsQuery(criteria product.Criteria) (ListProductsQuery, error) {
	if criteria.RestaurantID != nil {
		if err := criteria.RestaurantID.Validate(); err != nil {
			return ListProductsQuery{}, err
		}
	}
	if criteria.MinPrice != nil && criteria.MaxPrice != nil && criteria.MinPrice.Cmp(*criteria.MaxPrice) > 0 {
		return ListProductsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"price range",
			fmt.Errorf("min %s is greater than max %s", criteria.MinPrice, criteria.MaxPrice),
		)
	}
	return ListProductsQuery{criteria: criteria, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

type ProductQueryHandler struct {
	products ProductReader
}

// NewProductQueryHandler serves the product queries.
func NewProductQueryHandler(products ProductReader) ProductQueryHandler {
	return ProductQueryHandler{products: products}
}

func (h ProductQueryHandler) Get(ctx context.Context, query GetProductQuery) (*product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.products.Get(ctx, query.productID)
}

func (h ProductQueryHandler) List(ctx context.Context, query ListProductsQuery) ([]*product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.products.Find(ctx, query.criteria)
}

// Categories lists the distinct categories of available products.
func (h ProductQueryHandler) Categories(ctx context.Context) ([]string, error) {
	return h.products.Categories(ctx)
}
