package memory

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

type CustomerRepository struct {
	uow *UnitOfWork
}

func (r *CustomerRepository) Add(_ context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.run(func(s *state) error {
		key := aggregate.ID().String()
		if _, ok := s.customers[key]; ok {
			return errs.NewInvalidStateError("customer already exists: " + key)
		}
		if emailTaken(s, aggregate.Email(), nil) {
			return errs.NewInvalidStateError("email already in use: " + aggregate.Email())
		}
		s.customers[key] = customerFromDomain(aggregate)
		return nil
	})
}

func (r *CustomerRepository) Update(_ context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.run(func(s *state) error {
		key := aggregate.ID().String()
		if _, ok := s.customers[key]; !ok {
			return errs.NewObjectNotFoundError("customer", aggregate.ID())
		}
		id := aggregate.ID()
		if emailTaken(s, aggregate.Email(), &id) {
			return errs.NewInvalidStateError("email already in use: " + aggregate.Email())
		}
		s.customers[key] = customerFromDomain(aggregate)
		return nil
	})
}

func (r *CustomerRepository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	var result *customer.Customer
	err := r.uow.run(func(s *state) error {
		rec, ok := s.customers[id.String()]
		if !ok {
			return errs.NewObjectNotFoundError("customer", id)
		}
		c, err := rec.toDomain()
		result = c
		return err
	})
	return result, err
}

func (r *CustomerRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.uow.run(func(s *state) error {
		if _, ok := s.customers[id.String()]; !ok {
			return errs.NewObjectNotFoundError("customer", id)
		}
		delete(s.customers, id.String())
		return nil
	})
}

func (r *CustomerRepository) Find(_ context.Context, criteria customer.Criteria) ([]*customer.Customer, error) {
	var all []*customer.Customer
	err := r.uow.run(func(s *state) error {
		all = make([]*customer.Customer, 0, len(s.customers))
		for _, rec := range s.customers {
			c, err := rec.toDomain()
			if err != nil {
				return err
			}
			all = append(all, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return criteria.Apply(all), nil
}

func (r *CustomerRepository) ExistsByEmail(_ context.Context, email string, exclude *kernel.UUID) (bool, error) {
	var taken bool
	err := r.uow.run(func(s *state) error {
		taken = emailTaken(s, customer.NormalizeEmail(email), exclude)
		return nil
	})
	return taken, err
}

func emailTaken(s *state, email string, exclude *kernel.UUID) bool {
	for _, rec := range s.customers {
		if rec.email != email {
			continue
		}
		if exclude != nil && rec.id.IsEqual(*exclude) {
			continue
		}
		return true
	}
	return false
}
