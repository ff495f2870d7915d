package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pasteleria/internal/core/domain/model/kernel"
)

// UserResponse represents a user account for presentation.
// The password hash never leaves the query layer.
type UserResponse struct {
	ID            kernel.UUID
	Nombre        string
	Email         string
	Telefono      string
	Rol           string
	Activo        bool
	FechaRegistro time.Time
}

// fetchUsers loads users matching the WHERE clause, ordered by name.
func fetchUsers(ctx context.Context, db *gorm.DB, where string, args ...any) ([]UserResponse, error) {
	users := make([]UserResponse, 0)

	query := `
		SELECT
			id,
			nombre,
			email,
			telefono,
			rol,
			activo,
			fecha_registro
		FROM users
	`
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY nombre"

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       uuid.UUID
			resp     UserResponse
			telefono sql.NullString
		)

		err = rows.Scan(
			&id,
			&resp.Nombre,
			&resp.Email,
			&telefono,
			&resp.Rol,
			&resp.Activo,
			&resp.FechaRegistro,
		)
		if err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = userID
		resp.Telefono = telefono.String
		users = append(users, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
