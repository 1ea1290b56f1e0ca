package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (s *Server) ListProducts(ctx echo.Context, params ListProductsParams) error {
	minPrice, err := parseOptionalMoney(params.MinPrice)
	if err != nil {
		return s.fail(ctx, err)
	}
	maxPrice, err := parseOptionalMoney(params.MaxPrice)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewListProductsQuery(product.Criteria{
		Category:      deref(params.Category),
		NameContains:  deref(params.Name),
		AvailableOnly: deref(params.Available),
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	products, err := s.h.Products.List(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(products, toProduct))
}

// CreateProduct handles POST /api/v1/products. The owning restaurant must exist.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	restaurantID, err := kernelID(body.RestaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}
	price, err := kernel.ParseMoney(body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewCreateProductCommand(restaurantID, product.Details{
		Name:        body.Name,
		Description: body.Description,
		Price:       price,
		Category:    body.Category,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toProduct(p))
}

func (s *Server) ListProductCategories(ctx echo.Context) error {
	categories, err := s.h.Products.Categories(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, categories)
}

func (s *Server) GetProduct(ctx echo.Context, id uuid.UUID) error {
	productID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.Products.Get(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProduct(p))
}

func (s *Server) UpdateProduct(ctx echo.Context, id uuid.UUID) error {
	var body ProductPatch
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	productID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	price, err := parsePrice(body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewUpdateProductCommand(productID, product.Patch{
		Name:        body.Name,
		Description: body.Description,
		Price:       price,
		Category:    body.Category,
		ImageURL:    body.ImageURL,
		Available:   body.Available,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProduct(p))
}

func (s *Server) DeleteProduct(ctx echo.Context, id uuid.UUID) error {
	productID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func parseOptionalMoney(s *string) (*kernel.Money, error) {
	if s == nil {
		return nil, nil
	}
	m, err := kernel.ParseMoney(*s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
