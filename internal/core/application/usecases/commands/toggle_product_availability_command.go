package commands

import (
	"errors"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/guard"
)

var ErrToggleProductAvailabilityCommandIsNotConstructed = errors.New(
	"ToggleProductAvailabilityCommand must be created via NewToggleProductAvailabilityCommand constructor",
)

// ToggleProductAvailabilityCommand represents a request to flip a product's
// availability flag.
type ToggleProductAvailabilityCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleProductAvailabilityCommand creates a command to toggle availability.
func NewToggleProductAvailabilityCommand(productID kernel.UUID) (ToggleProductAvailabilityCommand, error) {
	toggleCommand := ToggleProductAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := toggleCommand.setProductID(productID); err != nil {
		return ToggleProductAvailabilityCommand{}, err
	}

	return toggleCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrToggleProductAvailabilityCommandIsNotConstructed if validation fails.
func (c ToggleProductAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrToggleProductAvailabilityCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to toggle.
func (c ToggleProductAvailabilityCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *ToggleProductAvailabilityCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
