package queries

import (
	"errors"

	"pasteleria/internal/core/domain/model/user"
	"pasteleria/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewAllUsersQuery or NewUsersByRoleQuery constructor",
)

// GetUsersQuery retrieves user accounts, optionally narrowed to a single
// role. Admin-facing.
//
// Example:
//
//	query, err := NewUsersByRoleQuery(user.Delivery)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetUsersQueryHandler(db)
//	couriers, err := handler.Handle(ctx, query)
type GetUsersQuery struct {
	rol user.Role

	guard guard.ConstructorGuard
}

// NewAllUsersQuery creates a query for every account regardless of role.
func NewAllUsersQuery() GetUsersQuery {
	return GetUsersQuery{guard: guard.NewConstructorGuard()}
}

// NewUsersByRoleQuery creates a query for accounts with the given role.
func NewUsersByRoleQuery(rol user.Role) (GetUsersQuery, error) {
	if err := rol.Validate(); err != nil {
		return GetUsersQuery{}, err
	}

	return GetUsersQuery{
		rol:   rol,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetUsersQueryIsNotConstructed if validation fails.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// Rol returns the role filter, or user.RoleUnknown when unfiltered.
func (q GetUsersQuery) Rol() user.Role {
	return q.rol
}

// IsFiltered reports whether a role filter was requested.
func (q GetUsersQuery) IsFiltered() bool {
	return q.rol != user.RoleUnknown
}
