package commands

import (
	"context"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/product"
)

// CreateProductCommandHandler adds products to the catalog.
// New products start available.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
func (h *CreateProductCommandHandler) Handle(
	ctx context.Context,
	cmd CreateProductCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newProduct, err := product.NewProduct(
		kernel.NewUUID(),
		cmd.Nombre(),
		cmd.Descripcion(),
		cmd.Precio(),
		cmd.ImagenURL(),
		cmd.Categoria(),
	)
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

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newProduct, nil
}
