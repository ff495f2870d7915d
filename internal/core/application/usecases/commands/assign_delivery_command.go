package commands

import (
	"errors"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents a request to assign a delivery user to
// an order.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign a delivery user.
// Validates both identifiers.
func NewAssignDeliveryCommand(orderID, deliveryID kernel.UUID) (AssignDeliveryCommand, error) {
	assignCommand := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setDeliveryID(deliveryID),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDeliveryCommandIsNotConstructed if validation fails.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryID returns the identifier of the delivery user.
func (c AssignDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *AssignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
