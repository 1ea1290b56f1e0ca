package memory

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

type ProductRepository struct {
	uow *UnitOfWork
}

func (r *ProductRepository) Add(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.run(func(s *state) error {
		key := aggregate.ID().String()
		if _, ok := s.products[key]; ok {
			return errs.NewInvalidStateError("product already exists: " + key)
		}
		s.products[key] = productFromDomain(aggregate)
		return nil
	})
}

func (r *ProductRepository) Update(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.run(func(s *state) error {
		key := aggregate.ID().String()
		if _, ok := s.products[key]; !ok {
			return errs.NewObjectNotFoundError("product", aggregate.ID())
		}
		s.products[key] = productFromDomain(aggregate)
		return nil
	})
}

func (r *ProductRepository) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	var result *product.Product
	err := r.uow.run(func(s *state) error {
		rec, ok := s.products[id.String()]
		if !ok {
			return errs.NewObjectNotFoundError("product", id)
		}
		p, err := rec.toDomain()
		result = p
		return err
	})
	return result, err
}

func (r *ProductRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.uow.run(func(s *state) error {
		if _, ok := s.products[id.String()]; !ok {
			return errs.NewObjectNotFoundError("product", id)
		}
		delete(s.products, id.String())
		return nil
	})
}

func (r *ProductRepository) Find(_ context.Context, criteria product.Criteria) ([]*product.Product, error) {
	all, err := r.all()
	if err != nil {
		return nil, err
	}
	return criteria.Apply(all), nil
}

func (r *ProductRepository) Categories(_ context.Context) ([]string, error) {
	all, err := r.all()
	if err != nil {
		return nil, err
	}
	return product.Categories(all), nil
}

func (r *ProductRepository) all() ([]*product.Product, error) {
	var result []*product.Product
	err := r.uow.run(func(s *state) error {
		result = make([]*product.Product, 0, len(s.products))
		for _, rec := range s.products {
			p, err := rec.toDomain()
			if err != nil {
				return err
			}
			result = append(result, p)
		}
		return nil
	})
	return result, err
}
