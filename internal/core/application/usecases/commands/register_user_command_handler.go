package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/user"
	"pasteleria/internal/pkg/errs"
)

var ErrEmailIsAlreadyRegistered = errors.New("email is already registered")

// RegisterUserCommandHandler creates user accounts.
// Used both for public customer self-registration and for admins creating
// delivery accounts; the role comes from the command and the HTTP layer
// decides who may register which role.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// The email must not be in use. The password is hashed with bcrypt before
// it reaches the aggregate; the plain text is never persisted.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	exists, err := userRepo.ExistsByEmail(ctx, cmd.Email())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewValueIsInvalidErrorWithCause("email", ErrEmailIsAlreadyRegistered)
	}

	newUser, err := user.NewUser(
		kernel.NewUUID(),
		cmd.Nombre(),
		cmd.Email(),
		cmd.Telefono(),
		string(hash),
		cmd.Rol(),
	)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newUser, nil
}
