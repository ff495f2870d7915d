package queries

import (
	"errors"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves a user profile by identifier.
type GetUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a query for one user profile.
func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserQueryIsNotConstructed if validation fails.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// UserID returns the requested user's identifier.
func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}
