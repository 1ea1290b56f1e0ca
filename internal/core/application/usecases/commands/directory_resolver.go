package commands

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/core/ports"
)

// DirectoryResolver implements ports.Resolver over the directory
// repositories. Built from repositories of an open unit of work, it reads
// inside that transaction.
type DirectoryResolver struct {
	customers   ports.CustomerRepository
	restaurants ports.RestaurantRepository
}

var _ ports.Resolver = DirectoryResolver{}

// NewDirectoryResolver builds a Resolver over the given repositories, usually
// the ones of the unit of work creating the order.
func NewDirectoryResolver(customers ports.CustomerRepository, restaurants ports.RestaurantRepository) DirectoryResolver {
	return DirectoryResolver{customers: customers, restaurants: restaurants}
}

func (r DirectoryResolver) ResolveCustomer(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	return r.customers.Get(ctx, id)
}

func (r DirectoryResolver) ResolveRestaurant(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	return r.restaurants.Get(ctx, id)
}
