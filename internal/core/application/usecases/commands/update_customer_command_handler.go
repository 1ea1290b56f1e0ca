package commands

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
)

// UpdateCustomerCommandHandler applies customer patches. A new email must not
// belong to another customer; keeping one's own email is allowed.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler applies customer patches. Changing the
// email to one held by another customer fails with errs.InvalidStateError.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	existing, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = existing.Apply(cmd.Patch()); err != nil {
		return nil, err
	}

	if cmd.Patch().Email.IsPresent() {
		id := existing.ID()
		if err = ensureEmailIsFree(ctx, repo, existing.Email(), &id); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
