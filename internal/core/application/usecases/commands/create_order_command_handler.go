package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// ErrIdempotentRequestInProgress is returned when a request reuses the key of
// a creation that has not finished yet.
var ErrIdempotentRequestInProgress = errs.NewInvalidStateError("a request with the same idempotency key is in progress")

// CreateOrderResult is the outcome of CreateOrderCommandHandler.Handle.
// Replayed is true when the order was created by an earlier request carrying
// the same idempotency key.
type CreateOrderResult struct {
	Order    *order.Order
	Replayed bool
}

// CreateOrderCommandHandler places orders. Customer and restaurant are
// resolved inside the same transaction that stores the order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, idempotencyStore, 24*time.Hour, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if errs.IsNotFound(err) {
//	    // unknown customer or restaurant
//	}
type CreateOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	idempotency    ports.IdempotencyStore
	idempotencyTTL time.Duration
	logger         zerolog.Logger
}

// NewCreateOrderCommandHandler creates the handler. idempotency may be nil,
// in which case idempotency keys are ignored.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	idempotency ports.IdempotencyStore,
	idempotencyTTL time.Duration,
	logger zerolog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		idempotency:    idempotency,
		idempotencyTTL: idempotencyTTL,
		logger:         logger.With().Str("component", "create-order").Logger(),
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	key := cmd.IdempotencyKey()
	if key == "" || h.idempotency == nil {
		o, err := h.create(ctx, cmd)
		return CreateOrderResult{Order: o}, err
	}

	existingID, reserved, err := h.idempotency.Reserve(ctx, key, h.idempotencyTTL)
	if err != nil {
		return CreateOrderResult{}, err
	}
	if !reserved {
		if existingID == nil {
			return CreateOrderResult{}, ErrIdempotentRequestInProgress
		}
		o, getErr := h.uowFactory.Create().OrderRepository().Get(ctx, *existingID)
		if getErr != nil {
			return CreateOrderResult{}, getErr
		}
		return CreateOrderResult{Order: o, Replayed: true}, nil
	}

	o, err := h.create(ctx, cmd)
	if err != nil {
		if releaseErr := h.idempotency.Release(ctx, key); releaseErr != nil {
			h.logger.Warn().Err(releaseErr).Str("key", key).Msg("failed to release idempotency key")
		}
		return CreateOrderResult{}, err
	}

	if err = h.idempotency.Complete(ctx, key, o.ID(), h.idempotencyTTL); err != nil {
		h.logger.Warn().Err(err).Str("key", key).Str("order_id", o.ID().String()).
			Msg("failed to bind idempotency key to order")
	}

	return CreateOrderResult{Order: o}, nil
}

func (h *CreateOrderCommandHandler) create(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	resolver := NewDirectoryResolver(uow.CustomerRepository(), uow.RestaurantRepository())
	if _, err := resolver.ResolveCustomer(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}
	if _, err := resolver.ResolveRestaurant(ctx, cmd.RestaurantID()); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.Total(),
		cmd.DeliveryAddress(),
		cmd.Notes(),
		kernel.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
