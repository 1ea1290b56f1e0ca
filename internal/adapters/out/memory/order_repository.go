package memory

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	err := r.uow.run(func(s *state) error {
		key := aggregate.ID().String()
		if _, ok := s.orders[key]; ok {
			return errs.NewInvalidStateError("order already exists: " + key)
		}
		s.orders[key] = orderFromDomain(aggregate)
		return nil
	})
	if err != nil {
		return err
	}
	r.uow.track(ctx, aggregate)
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	err := r.uow.run(func(s *state) error {
		key := aggregate.ID().String()
		if _, ok := s.orders[key]; !ok {
			return errs.NewObjectNotFoundError("order", aggregate.ID())
		}
		s.orders[key] = orderFromDomain(aggregate)
		return nil
	})
	if err != nil {
		return err
	}
	r.uow.track(ctx, aggregate)
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	var result *order.Order
	err := r.uow.run(func(s *state) error {
		rec, ok := s.orders[id.String()]
		if !ok {
			return errs.NewObjectNotFoundError("order", id)
		}
		o, err := rec.toDomain()
		result = o
		return err
	})
	return result, err
}

func (r *OrderRepository) Find(_ context.Context, criteria order.Criteria) ([]*order.Order, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	all, err := r.all()
	if err != nil {
		return nil, err
	}
	return criteria.Apply(all), nil
}

func (r *OrderRepository) all() ([]*order.Order, error) {
	var result []*order.Order
	err := r.uow.run(func(s *state) error {
		result = make([]*order.Order, 0, len(s.orders))
		for _, rec := range s.orders {
			o, err := rec.toDomain()
			if err != nil {
				return err
			}
			result = append(result, o)
		}
		return nil
	})
	return result, err
}
