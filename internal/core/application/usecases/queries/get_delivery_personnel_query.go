package queries

import (
	"errors"

	"pasteleria/internal/pkg/guard"
)

var ErrGetDeliveryPersonnelQueryIsNotConstructed = errors.New(
	"GetDeliveryPersonnelQuery must be created via NewGetDeliveryPersonnelQuery constructor",
)

// GetDeliveryPersonnelQuery retrieves all active delivery users, the pool
// admins pick from when assigning orders.
type GetDeliveryPersonnelQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryPersonnelQuery creates the delivery personnel listing.
func NewGetDeliveryPersonnelQuery() GetDeliveryPersonnelQuery {
	return GetDeliveryPersonnelQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryPersonnelQueryIsNotConstructed if validation fails.
func (q GetDeliveryPersonnelQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryPersonnelQueryIsNotConstructed)
}
