package commands

import (
	"context"

	"pasteleria/internal/core/domain/model/product"
)

// UpdateProductCommandHandler replaces a product's editable fields.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
// Orders created before the update keep their snapshotted names and prices.
func (h *UpdateProductCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateProductCommand,
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

	if err = aggregate.Update(
		cmd.Nombre(),
		cmd.Descripcion(),
		cmd.Precio(),
		cmd.ImagenURL(),
		cmd.Categoria(),
		cmd.Disponible(),
	); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
