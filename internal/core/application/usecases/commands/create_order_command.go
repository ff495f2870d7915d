package commands

import (
	"errors"
	"fmt"
	"strings"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDireccionEntregaIsRequired = errors.New("direccionEntrega is required")
	ErrItemsAreRequired           = errors.New("at least one item is required")
)

// ItemData carries one requested order line: which product and how many.
// Prices and names are not accepted from the caller; the handler snapshots
// them from the catalog at creation time.
type ItemData struct {
	ProductID kernel.UUID
	Cantidad  int
}

// CreateOrderCommand represents a customer's request to place a new order.
// Encapsulates the delivery address, optional notes, and the requested lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, "Av. Los Pinos 123", "sin azucar", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s placed in status %s", created.ID(), created.Status())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID       kernel.UUID
	direccionEntrega string
	notas            string
	items            []ItemData

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer ID is valid, the delivery address is not blank,
// and every item references a valid product with a positive quantity.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	direccionEntrega string,
	notas string,
	items []ItemData,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setDireccionEntrega(direccionEntrega),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.notas = notas
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DireccionEntrega returns the delivery address.
func (c CreateOrderCommand) DireccionEntrega() string {
	return c.direccionEntrega
}

// Notas returns the free-form order notes. May be empty.
func (c CreateOrderCommand) Notas() string {
	return c.notas
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemData {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDireccionEntrega(direccionEntrega string) error {
	if strings.TrimSpace(direccionEntrega) == "" {
		return ErrDireccionEntregaIsRequired
	}

	c.direccionEntrega = direccionEntrega
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemData) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return fmt.Errorf("items[%d].productId: %w", i, err)
		}
		if item.Cantidad <= 0 {
			return fmt.Errorf("items[%d].cantidad: must be greater than 0", i)
		}
	}

	c.items = items
	return nil
}
