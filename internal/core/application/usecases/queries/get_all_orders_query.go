package queries

import (
	"errors"

	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order in the system, optionally
// narrowed to a single status. Admin-facing.
//
// Example:
//
//	query, err := NewGetAllOrdersQuery(order.Pendiente)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	pending, err := handler.Handle(ctx, query)
type GetAllOrdersQuery struct {
	estado order.Status

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for orders in the given status.
func NewGetAllOrdersQuery(estado order.Status) (GetAllOrdersQuery, error) {
	if err := estado.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return GetAllOrdersQuery{
		estado: estado,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetAllOrdersQueryUnfiltered creates a query for orders in any status.
func NewGetAllOrdersQueryUnfiltered() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Estado returns the status filter, or order.Unknown when unfiltered.
func (q GetAllOrdersQuery) Estado() order.Status {
	return q.estado
}

// IsFiltered reports whether a status filter was requested.
func (q GetAllOrdersQuery) IsFiltered() bool {
	return q.estado != order.Unknown
}
