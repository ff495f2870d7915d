package commands

import (
	"context"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Resolves each requested product against the catalog, snapshots its name
// and price into the order lines, and persists the order in Pendiente status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(customerID, "Av. Los Pinos 123", "", items)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.Total() reflects the catalog prices at this moment
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderingUoWFactory for transactional access to orders and
// the product catalog.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Every requested product must exist and be available; unavailable products
// reject the whole order. Line prices are read once here, so later catalog
// changes never alter an existing order's total.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		catalogProduct, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if !catalogProduct.Disponible() {
			return nil, errs.NewObjectUnavailableError("product", line.ProductID)
		}

		item, err := order.NewItem(
			kernel.NewUUID(),
			catalogProduct.ID(),
			catalogProduct.Nombre(),
			line.Cantidad,
			catalogProduct.Precio(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.DireccionEntrega(),
		cmd.Notas(),
		items,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
