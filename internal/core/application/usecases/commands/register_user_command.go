package commands

import (
	"errors"
	"strings"

	"pasteleria/internal/core/domain/model/user"
	"pasteleria/internal/pkg/guard"
)

const minPasswordLength = 6

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrNombreIsRequired   = errors.New("nombre is required")
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsTooShort = errors.New("password must be at least 6 characters")
)

// RegisterUserCommand represents a request to create a user account.
// Carries the plain password; hashing happens in the handler so the
// domain model only ever sees the hash.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	nombre   string
	email    string
	telefono string
	password string
	rol      user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user with the
// given role. Validates the name, email, password length, and role.
func NewRegisterUserCommand(
	nombre string,
	email string,
	telefono string,
	password string,
	rol user.Role,
) (RegisterUserCommand, error) {
	registerCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setNombre(nombre),
		registerCommand.setEmail(email),
		registerCommand.setPassword(password),
		registerCommand.setRol(rol),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	registerCommand.telefono = telefono
	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Nombre returns the user's display name.
func (c RegisterUserCommand) Nombre() string {
	return c.nombre
}

// Email returns the login email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Telefono returns the contact phone. May be empty.
func (c RegisterUserCommand) Telefono() string {
	return c.telefono
}

// Password returns the plain password to be hashed by the handler.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Rol returns the role the account is registered with.
func (c RegisterUserCommand) Rol() user.Role {
	return c.rol
}

func (c *RegisterUserCommand) setNombre(nombre string) error {
	if strings.TrimSpace(nombre) == "" {
		return ErrNombreIsRequired
	}

	c.nombre = nombre
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRol(rol user.Role) error {
	if err := rol.Validate(); err != nil {
		return err
	}

	c.rol = rol
	return nil
}
