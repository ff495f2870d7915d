package queries

import (
	"context"

	"gorm.io/gorm"

	"pasteleria/internal/pkg/errs"
)

// GetUserQueryHandler retrieves user profiles.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for user profile lookups.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle returns the user's profile or an error wrapping errs.ErrObjectNotFound.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	users, err := fetchUsers(ctx, h.db, "id = ?", query.UserID().Bytes())
	if err != nil {
		return UserResponse{}, err
	}
	if len(users) == 0 {
		return UserResponse{}, errs.NewObjectNotFoundError("userId", query.UserID())
	}

	return users[0], nil
}
