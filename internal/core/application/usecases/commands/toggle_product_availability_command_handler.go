package commands

import (
	"context"

	"pasteleria/internal/core/domain/model/product"
)

// ToggleProductAvailabilityCommandHandler flips product availability.
// Unavailable products stay visible to admins but cannot be ordered.
type ToggleProductAvailabilityCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewToggleProductAvailabilityCommandHandler creates a handler for the toggle.
func NewToggleProductAvailabilityCommandHandler(
	uowFactory ProductUoWFactory,
) ToggleProductAvailabilityCommandHandler {
	return ToggleProductAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle command.
func (h *ToggleProductAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleProductAvailabilityCommand,
) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	aggregate.ToggleDisponible()

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
