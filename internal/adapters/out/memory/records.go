package memory

import (
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/restaurant"
)

func orderFromDomain(o *order.Order) orderRecord {
	return orderRecord{
		id:              o.ID(),
		customerID:      o.CustomerID(),
		restaurantID:    o.RestaurantID(),
		total:           o.Total(),
		deliveryAddress: o.DeliveryAddress(),
		notes:           o.Notes(),
		status:          o.Status(),
		createdAt:       o.CreatedAt(),
		deliveredAt:     o.DeliveredAt(),
	}
}

func (r orderRecord) toDomain() (*order.Order, error) {
	return order.RestoreOrder(r.id, r.customerID, r.restaurantID, r.total,
		r.deliveryAddress, r.notes, r.status, r.createdAt, r.deliveredAt)
}

func customerFromDomain(c *customer.Customer) customerRecord {
	return customerRecord{
		id:           c.ID(),
		name:         c.Name(),
		email:        c.Email(),
		phone:        c.Phone(),
		address:      c.Address(),
		active:       c.IsActive(),
		registeredAt: c.RegisteredAt(),
	}
}

func (r customerRecord) toDomain() (*customer.Customer, error) {
	return customer.RestoreCustomer(r.id, r.name, r.email, r.phone, r.address, r.active, r.registeredAt)
}

func restaurantFromDomain(r *restaurant.Restaurant) restaurantRecord {
	rec := restaurantRecord{
		id:           r.ID(),
		name:         r.Name(),
		category:     r.Category(),
		address:      r.Address(),
		phone:        r.Phone(),
		openingHours: r.OpeningHours(),
		active:       r.IsActive(),
	}
	if rating, ok := r.Rating(); ok {
		rec.rating = &rating
	}
	return rec
}

func (r restaurantRecord) toDomain() (*restaurant.Restaurant, error) {
	rating := kernel.None[float64]()
	if r.rating != nil {
		rating = kernel.Some(*r.rating)
	}
	return restaurant.RestoreRestaurant(r.id, restaurant.Details{
		Name:         r.name,
		Category:     r.category,
		Address:      r.address,
		Phone:        r.phone,
		OpeningHours: r.openingHours,
		Rating:       rating,
	}, r.active)
}

func productFromDomain(p *product.Product) productRecord {
	return productRecord{
		id:           p.ID(),
		restaurantID: p.RestaurantID(),
		name:         p.Name(),
		description:  p.Description(),
		price:        p.Price(),
		category:     p.Category(),
		imageURL:     p.ImageURL(),
		available:    p.IsAvailable(),
	}
}

func (r productRecord) toDomain() (*product.Product, error) {
	return product.RestoreProduct(r.id, r.restaurantID, product.Details{
		Name:        r.name,
		Description: r.description,
		Price:       r.price,
		Category:    r.category,
		ImageURL:    r.imageURL,
	}, r.available)
}
