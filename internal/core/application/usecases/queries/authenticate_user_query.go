package queries

import (
	"errors"
	"strings"

	"pasteleria/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
	ErrCredentialsAreRequired = errors.New("email and password are required")
)

// AuthenticateUserQuery verifies login credentials.
//
// Example:
//
//	query, err := NewAuthenticateUserQuery("maria@example.com", "secreta123")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAuthenticateUserQueryHandler(db)
//	account, err := handler.Handle(ctx, query)
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a credential check for the given login.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthenticateUserQuery{}, ErrCredentialsAreRequired
	}

	return AuthenticateUserQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateUserQueryIsNotConstructed if validation fails.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the normalized login email.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the plain password to verify.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}
