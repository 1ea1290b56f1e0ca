package commands

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers customers with a unique email.
// The uniqueness check and the insert share one transaction.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates the handler for customer sign-up.
// Emails must be unique; a taken email fails with errs.InvalidStateError.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := customer.NewCustomer(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address(), kernel.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	if err = ensureEmailIsFree(ctx, repo, created.Email(), nil); err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func ensureEmailIsFree(ctx context.Context, repo ports.CustomerRepository, email string, exclude *kernel.UUID) error {
	taken, err := repo.ExistsByEmail(ctx, email, exclude)
	if err != nil {
		return err
	}
	if taken {
		return errs.NewInvalidStateError("email already in use: " + email)
	}
	return nil
}
