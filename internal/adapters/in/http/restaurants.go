package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListRestaurants handles GET /api/v1/restaurants. ranked=true orders by
// rating, best first.
func (s *Server) ListRestaurants(ctx echo.Context, params ListRestaurantsParams) error {
	criteria := restaurant.Criteria{
		Category:     deref(params.Category),
		NameContains: deref(params.Name),
		ActiveOnly:   deref(params.Active),
		MinRating:    params.MinRating,
		Limit:        deref(params.Limit),
	}
	if deref(params.Ranked) {
		criteria.SortBy = restaurant.ByRatingDesc
	}
	query, err := queries.NewListRestaurantsQuery(criteria)
	if err != nil {
		return s.fail(ctx, err)
	}
	restaurants, err := s.h.Restaurants.List(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(restaurants, toRestaurant))
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var body NewRestaurant
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	cmd := commands.NewCreateRestaurantCommand(restaurant.Details{
		Name:         body.Name,
		Category:     body.Category,
		Address:      body.Address,
		Phone:        body.Phone,
		OpeningHours: body.OpeningHours,
		Rating:       optionalRating(body.Rating),
	})
	r, err := s.h.CreateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toRestaurant(r))
}

// ListRestaurantCategories handles GET /api/v1/restaurants/categories.
func (s *Server) ListRestaurantCategories(ctx echo.Context) error {
	categories, err := s.h.Restaurants.Categories(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, categories)
}

func (s *Server) GetRestaurant(ctx echo.Context, id uuid.UUID) error {
	restaurantID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}
	r, err := s.h.Restaurants.Get(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRestaurant(r))
}

func (s *Server) UpdateRestaurant(ctx echo.Context, id uuid.UUID) error {
	var body RestaurantPatch
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	restaurantID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewUpdateRestaurantCommand(restaurantID, restaurant.Patch{
		Name:         body.Name,
		Category:     body.Category,
		Address:      body.Address,
		Phone:        body.Phone,
		OpeningHours: body.OpeningHours,
		Rating:       body.Rating,
		Active:       body.Active,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	r, err := s.h.UpdateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRestaurant(r))
}

func (s *Server) DeleteRestaurant(ctx echo.Context, id uuid.UUID) error {
	restaurantID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteRestaurantCommand(restaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.DeleteRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListRestaurantProducts handles GET /api/v1/restaurants/{id}/products.
// An unknown restaurant yields 404 rather than an empty menu.
func (s *Server) ListRestaurantProducts(ctx echo.Context, id uuid.UUID, available *bool) error {
	restaurantID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	getQuery, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if _, err := s.h.Restaurants.Get(ctx.Request().Context(), getQuery); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListProductsQuery(product.Criteria{
		RestaurantID:  &restaurantID,
		AvailableOnly: deref(available),
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

// GetRestaurantSales handles GET /api/v1/restaurants/{id}/sales.
func (s *Server) GetRestaurantSales(ctx echo.Context, id uuid.UUID) error {
	restaurantID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewRestaurantSalesQuery(restaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.salesTotal(ctx, query)
}
