package queries

import (
	"errors"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/user"
	"pasteleria/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order on behalf of a viewer.
// The viewer's role decides what they may see: admins any order, customers
// only their own, delivery users only orders assigned to them.
type GetOrderQuery struct {
	orderID  kernel.UUID
	viewerID kernel.UUID
	rol      user.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for an order as seen by the given viewer.
func NewGetOrderQuery(orderID, viewerID kernel.UUID, rol user.Role) (GetOrderQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		viewerID.Validate(),
		rol.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:  orderID,
		viewerID: viewerID,
		rol:      rol,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ViewerID returns the identity of the requesting user.
func (q GetOrderQuery) ViewerID() kernel.UUID {
	return q.viewerID
}

// Rol returns the role of the requesting user.
func (q GetOrderQuery) Rol() user.Role {
	return q.rol
}
