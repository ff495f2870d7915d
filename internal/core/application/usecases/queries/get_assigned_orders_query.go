package queries

import (
	"errors"

	"pasteleria/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery retrieves every order that has a delivery
// assignment, so admins can audit who is carrying what.
type GetAssignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates the assignment audit listing.
func NewGetAssignedOrdersQuery() GetAssignedOrdersQuery {
	return GetAssignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignedOrdersQueryIsNotConstructed if validation fails.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}
