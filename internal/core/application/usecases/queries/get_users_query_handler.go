package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUsersQueryHandler retrieves accounts for the admin user directory.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for the admin user listing.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle returns all accounts ordered by name, honoring the optional role
// filter. Deactivated accounts are included so admins can see them.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.IsFiltered() {
		return fetchUsers(ctx, h.db, "rol = ?", query.Rol().String())
	}
	return fetchUsers(ctx, h.db, "")
}
