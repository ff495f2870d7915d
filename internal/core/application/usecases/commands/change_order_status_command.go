package commands

import (
	"errors"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/core/domain/model/user"
	"pasteleria/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// status. Carries the acting user's identity and role so the handler can
// enforce who may request which transitions.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actorID kernel.UUID
	rol     user.Role

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates the order ID, the target status, and the actor's identity and role.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actorID kernel.UUID,
	rol user.Role,
) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setTarget(target),
		statusCommand.setActorID(actorID),
		statusCommand.setRol(rol),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested new status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// ActorID returns the identifier of the user requesting the change.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Rol returns the role of the user requesting the change.
func (c ChangeOrderStatusCommand) Rol() user.Role {
	return c.rol
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *ChangeOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ChangeOrderStatusCommand) setRol(rol user.Role) error {
	if err := rol.Validate(); err != nil {
		return err
	}

	c.rol = rol
	return nil
}
