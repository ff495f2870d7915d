package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pasteleria/internal/core/domain/model/kernel"
)

// ErrInvalidCredentials is returned for a wrong password, an unknown email,
// and a deactivated account alike, so responses do not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateUserQueryHandler verifies login credentials against the
// stored bcrypt hashes.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for credential checks.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle returns the account when the email exists, the account is active,
// and the password matches. Every failure mode maps to ErrInvalidCredentials.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			nombre,
			email,
			telefono,
			password_hash,
			rol,
			activo,
			fecha_registro
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	var (
		id           uuid.UUID
		resp         UserResponse
		telefono     sql.NullString
		passwordHash string
	)
	err := row.Scan(
		&id,
		&resp.Nombre,
		&resp.Email,
		&telefono,
		&passwordHash,
		&resp.Rol,
		&resp.Activo,
		&resp.FechaRegistro,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return UserResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return UserResponse{}, err
	}

	if !resp.Activo {
		return UserResponse{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())) != nil {
		return UserResponse{}, ErrInvalidCredentials
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserResponse{}, err
	}
	resp.ID = userID
	resp.Telefono = telefono.String

	return resp, nil
}
