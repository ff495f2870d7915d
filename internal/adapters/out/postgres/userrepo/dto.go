// Package userrepo implements user account persistence with GORM.
package userrepo

import (
	"time"

	"github.com/google/uuid"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/user"
)

// UserDTO represents the database structure for user accounts.
// Email is unique across the system and stored lowercased.
type UserDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre        string
	Email         string `gorm:"uniqueIndex"`
	Telefono      string
	PasswordHash  string
	Rol           string `gorm:"type:varchar(20);index"`
	Activo        bool
	FechaRegistro time.Time
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:            aggregate.ID().Bytes(),
		Nombre:        aggregate.Nombre(),
		Email:         aggregate.Email(),
		Telefono:      aggregate.Telefono(),
		PasswordHash:  aggregate.PasswordHash(),
		Rol:           aggregate.Rol().String(),
		Activo:        aggregate.Activo(),
		FechaRegistro: aggregate.FechaRegistro(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	rol, err := user.RoleFromString(dto.Rol)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Nombre,
		dto.Email,
		dto.Telefono,
		dto.PasswordHash,
		rol,
		dto.Activo,
		dto.FechaRegistro,
	)
}
