package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies status changes under the
// configured transition policy. The load, change and save happen in one
// transaction.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, order.Strict)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Delivered)
//	updated, err := handler.Handle(ctx, cmd)
//	if errs.IsInvalidState(err) {
//	    // transition not allowed from the current status
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.TransitionPolicy
}

// NewChangeOrderStatusCommandHandler creates the handler for status changes.
//
// Parameters:
//   - uowFactory: opens one unit of work per Handle call
//   - policy: order.Strict accepts only edges of the transition table,
//     order.Permissive any valid status
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, order.Strict)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Confirmed)
//	o, err := handler.Handle(ctx, cmd)
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, policy order.TransitionPolicy) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Status(), h.policy, kernel.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
