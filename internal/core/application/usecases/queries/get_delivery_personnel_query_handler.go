package queries

import (
	"context"

	"gorm.io/gorm"

	"pasteleria/internal/core/domain/model/user"
)

// GetDeliveryPersonnelQueryHandler retrieves the active delivery roster.
type GetDeliveryPersonnelQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryPersonnelQueryHandler creates a handler for the roster query.
func NewGetDeliveryPersonnelQueryHandler(db *gorm.DB) GetDeliveryPersonnelQueryHandler {
	return GetDeliveryPersonnelQueryHandler{db: db}
}

// Handle returns all active users with the DELIVERY role, ordered by name.
func (h GetDeliveryPersonnelQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryPersonnelQuery,
) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchUsers(ctx, h.db, "rol = ? AND activo = TRUE", user.Delivery.String())
}
