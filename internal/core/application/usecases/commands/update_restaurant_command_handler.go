package commands

import (
	"context"

	"marketplace/internal/core/domain/model/restaurant"
)

type UpdateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewUpdateRestaurantCommandHandler applies restaurant patches.
func NewUpdateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) UpdateRestaurantCommandHandler {
	return UpdateRestaurantCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateRestaurantCommandHandler) Handle(ctx context.Context, cmd UpdateRestaurantCommand) (*restaurant.Restaurant, error) {
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

	repo := uow.RestaurantRepository()
	existing, err := repo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	if err = existing.Apply(cmd.Patch()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
