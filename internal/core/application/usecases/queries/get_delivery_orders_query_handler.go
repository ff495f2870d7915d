package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveryOrdersQueryHandler retrieves a delivery user's assigned orders.
type GetDeliveryOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryOrdersQueryHandler creates a handler for delivery workload queries.
func NewGetDeliveryOrdersQueryHandler(db *gorm.DB) GetDeliveryOrdersQueryHandler {
	return GetDeliveryOrdersQueryHandler{db: db}
}

// Handle returns the orders assigned to the delivery user, newest first.
func (h GetDeliveryOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchOrders(ctx, h.db, "a.delivery_id = ?", query.DeliveryID().Bytes())
}
