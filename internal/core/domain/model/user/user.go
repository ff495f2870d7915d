// Package user provides the User aggregate and the role model used for
// authorization decisions across the application.
package user

import (
	"errors"
	"strings"
	"time"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User represents an account in the system: a customer, an administrator, or
// a delivery person. The password is stored as a bcrypt hash; the aggregate
// never sees plaintext credentials.
type User struct {
	id            kernel.UUID
	nombre        string
	email         string
	telefono      string
	passwordHash  string
	rol           Role
	activo        bool
	fechaRegistro time.Time

	isConstructed bool
}

// NewUser creates an active user with the given role.
func NewUser(
	id kernel.UUID,
	nombre string,
	email string,
	telefono string,
	passwordHash string,
	rol Role,
) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(nombre) == "" {
		return nil, errs.NewValueIsRequiredError("nombre")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return nil, errs.NewValueIsInvalidError("email")
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}
	if err := rol.Validate(); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		nombre:        nombre,
		email:         email,
		telefono:      telefono,
		passwordHash:  passwordHash,
		rol:           rol,
		activo:        true,
		fechaRegistro: time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(
	id kernel.UUID,
	nombre string,
	email string,
	telefono string,
	passwordHash string,
	rol Role,
	activo bool,
	fechaRegistro time.Time,
) (*User, error) {
	u, err := NewUser(id, nombre, email, telefono, passwordHash, rol)
	if err != nil {
		return nil, err
	}
	u.activo = activo
	u.fechaRegistro = fechaRegistro
	return u, nil
}

// Validate ensures the User instance was created through a factory method.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Nombre returns the user's display name.
func (u *User) Nombre() string {
	return u.nombre
}

// Email returns the user's login email, lowercased.
func (u *User) Email() string {
	return u.email
}

// Telefono returns the user's phone number.
func (u *User) Telefono() string {
	return u.telefono
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Rol returns the user's role.
func (u *User) Rol() Role {
	return u.rol
}

// Activo reports whether the account is enabled.
func (u *User) Activo() bool {
	return u.activo
}

// FechaRegistro returns when the account was created.
func (u *User) FechaRegistro() time.Time {
	return u.fechaRegistro
}

// IsActiveDelivery reports whether the user is an enabled delivery person,
// the precondition for receiving order assignments.
func (u *User) IsActiveDelivery() bool {
	return u.activo && u.rol == Delivery
}
