package memory

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/pkg/errs"
)

type RestaurantRepository struct {
	uow *UnitOfWork
}

func (r *RestaurantRepository) Add(_ context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.run(func(s *state) error {
		key := aggregate.ID().String()
		if _, ok := s.restaurants[key]; ok {
			return errs.NewInvalidStateError("restaurant already exists: " + key)
		}
		s.restaurants[key] = restaurantFromDomain(aggregate)
		return nil
	})
}

func (r *RestaurantRepository) Update(_ context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.run(func(s *state) error {
		key := aggregate.ID().String()
		if _, ok := s.restaurants[key]; !ok {
			return errs.NewObjectNotFoundError("restaurant", aggregate.ID())
		}
		s.restaurants[key] = restaurantFromDomain(aggregate)
		return nil
	})
}

func (r *RestaurantRepository) Get(_ context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	var result *restaurant.Restaurant
	err := r.uow.run(func(s *state) error {
		rec, ok := s.restaurants[id.String()]
		if !ok {
			return errs.NewObjectNotFoundError("restaurant", id)
		}
		x, err := rec.toDomain()
		result = x
		return err
	})
	return result, err
}

func (r *RestaurantRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.uow.run(func(s *state) error {
		if _, ok := s.restaurants[id.String()]; !ok {
			return errs.NewObjectNotFoundError("restaurant", id)
		}
		delete(s.restaurants, id.String())
		return nil
	})
}

func (r *RestaurantRepository) Find(_ context.Context, criteria restaurant.Criteria) ([]*restaurant.Restaurant, error) {
	all, err := r.all()
	if err != nil {
		return nil, err
	}
	return criteria.Apply(all), nil
}

func (r *RestaurantRepository) Categories(_ context.Context) ([]string, error) {
	all, err := r.all()
	if err != nil {
		return nil, err
	}
	return restaurant.Categories(all), nil
}

func (r *RestaurantRepository) all() ([]*restaurant.Restaurant, error) {
	var result []*restaurant.Restaurant
	err := r.uow.run(func(s *state) error {
		result = make([]*restaurant.Restaurant, 0, len(s.restaurants))
		for _, rec := range s.restaurants {
			x, err := rec.toDomain()
			if err != nil {
				return err
			}
			result = append(result, x)
		}
		return nil
	})
	return result, err
}
