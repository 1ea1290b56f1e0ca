package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// Request bodies. Amounts travel as decimal strings such as "100.00".
type (
	NewCustomer struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}

	CustomerPatch struct {
		Name    kernel.Optional[string] `json:"name"`
		Email   kernel.Optional[string] `json:"email"`
		Phone   kernel.Optional[string] `json:"phone"`
		Address kernel.Optional[string] `json:"address"`
		Active  kernel.Optional[bool]   `json:"active"`
	}

	NewRestaurant struct {
		Name         string   `json:"name"`
		Category     string   `json:"category"`
		Address      string   `json:"address"`
		Phone        string   `json:"phone"`
		OpeningHours string   `json:"openingHours"`
		Rating       *float64 `json:"rating"`
	}

	RestaurantPatch struct {
		Name         kernel.Optional[string]  `json:"name"`
		Category     kernel.Optional[string]  `json:"category"`
		Address      kernel.Optional[string]  `json:"address"`
		Phone        kernel.Optional[string]  `json:"phone"`
		OpeningHours kernel.Optional[string]  `json:"openingHours"`
		Rating       kernel.Optional[float64] `json:"rating"`
		Active       kernel.Optional[bool]    `json:"active"`
	}

	NewProduct struct {
		RestaurantID uuid.UUID `json:"restaurantId"`
		Name         string    `json:"name"`
		Description  string    `json:"description"`
		Price        string    `json:"price"`
		Category     string    `json:"category"`
		ImageURL     string    `json:"imageUrl"`
	}

	ProductPatch struct {
		Name        kernel.Optional[string] `json:"name"`
		Description kernel.Optional[string] `json:"description"`
		Price       kernel.Optional[string] `json:"price"`
		Category    kernel.Optional[string] `json:"category"`
		ImageURL    kernel.Optional[string] `json:"imageUrl"`
		Available   kernel.Optional[bool]   `json:"available"`
	}

	NewOrder struct {
		CustomerID      uuid.UUID `json:"customerId"`
		RestaurantID    uuid.UUID `json:"restaurantId"`
		TotalAmount     string    `json:"totalAmount"`
		DeliveryAddress string    `json:"deliveryAddress"`
		Notes           string    `json:"notes"`
	}

	StatusChange struct {
		Status string `json:"status"`
	}
)

// Response bodies.
type (
	Customer struct {
		ID           uuid.UUID `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		Phone        string    `json:"phone,omitempty"`
		Address      string    `json:"address,omitempty"`
		Active       bool      `json:"active"`
		RegisteredAt time.Time `json:"registeredAt"`
	}

	Restaurant struct {
		ID           uuid.UUID `json:"id"`
		Name         string    `json:"name"`
		Category     string    `json:"category"`
		Address      string    `json:"address"`
		Phone        string    `json:"phone,omitempty"`
		OpeningHours string    `json:"openingHours,omitempty"`
		Rating       *float64  `json:"rating"`
		Active       bool      `json:"active"`
	}

	Product struct {
		ID           uuid.UUID `json:"id"`
		RestaurantID uuid.UUID `json:"restaurantId"`
		Name         string    `json:"name"`
		Description  string    `json:"description,omitempty"`
		Price        string    `json:"price"`
		Category     string    `json:"category,omitempty"`
		ImageURL     string    `json:"imageUrl,omitempty"`
		Available    bool      `json:"available"`
	}

	Order struct {
		ID              uuid.UUID  `json:"id"`
		CustomerID      uuid.UUID  `json:"customerId"`
		RestaurantID    uuid.UUID  `json:"restaurantId"`
		TotalAmount     string     `json:"totalAmount"`
		DeliveryAddress string     `json:"deliveryAddress"`
		Notes           string     `json:"notes,omitempty"`
		Status          string     `json:"status"`
		CreatedAt       time.Time  `json:"createdAt"`
		DeliveredAt     *time.Time `json:"deliveredAt"`
	}

	SalesTotal struct {
		Total      string `json:"total"`
		OrderCount int64  `json:"orderCount"`
	}

	StatusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}

	StatusCounts struct {
		Counts []StatusCount `json:"counts"`
		Total  int64         `json:"total"`
	}
)

func toCustomer(c *customer.Customer) Customer {
	return Customer{
		ID:           c.ID().Bytes(),
		Name:         c.Name(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		Address:      c.Address(),
		Active:       c.IsActive(),
		RegisteredAt: c.RegisteredAt(),
	}
}

func toRestaurant(r *restaurant.Restaurant) Restaurant {
	dto := Restaurant{
		ID:           r.ID().Bytes(),
		Name:         r.Name(),
		Category:     r.Category(),
		Address:      r.Address(),
		Phone:        r.Phone(),
		OpeningHours: r.OpeningHours(),
		Active:       r.IsActive(),
	}
	if rating, ok := r.Rating(); ok {
		dto.Rating = &rating
	}
	return dto
}

func toProduct(p *product.Product) Product {
	return Product{
		ID:           p.ID().Bytes(),
		RestaurantID: p.RestaurantID().Bytes(),
		Name:         p.Name(),
		Description:  p.Description(),
		Price:        p.Price().String(),
		Category:     p.Category(),
		ImageURL:     p.ImageURL(),
		Available:    p.IsAvailable(),
	}
}

func toOrder(o *order.Order) Order {
	return Order{
		ID:              o.ID().Bytes(),
		CustomerID:      o.CustomerID().Bytes(),
		RestaurantID:    o.RestaurantID().Bytes(),
		TotalAmount:     o.Total().String(),
		DeliveryAddress: o.DeliveryAddress(),
		Notes:           o.Notes(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		DeliveredAt:     o.DeliveredAt(),
	}
}

func toSalesTotal(r queries.GetSalesTotalQueryResponse) SalesTotal {
	return SalesTotal{Total: r.Total.String(), OrderCount: r.OrderCount}
}

func toStatusCounts(r queries.CountOrdersByStatusQueryResponse) StatusCounts {
	counts := make([]StatusCount, 0, len(r.Counts))
	for _, c := range r.Counts {
		counts = append(counts, StatusCount{Status: c.Status.String(), Count: c.Count})
	}
	return StatusCounts{Counts: counts, Total: r.Total()}
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func optionalRating(rating *float64) kernel.Optional[float64] {
	if rating == nil {
		return kernel.None[float64]()
	}
	return kernel.Some(*rating)
}

// parsePrice converts an optional decimal string of a patch into money.
func parsePrice(price kernel.Optional[string]) (kernel.Optional[kernel.Money], error) {
	s, ok := price.Get()
	if !ok {
		return kernel.None[kernel.Money](), nil
	}
	m, err := kernel.ParseMoney(s)
	if err != nil {
		return kernel.None[kernel.Money](), err
	}
	return kernel.Some(m), nil
}
