package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAssignedOrdersQueryHandler retrieves orders with a delivery assignment.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for the assignment audit.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle returns every assigned order, newest first.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchOrders(ctx, h.db, "a.delivery_id IS NOT NULL")
}
