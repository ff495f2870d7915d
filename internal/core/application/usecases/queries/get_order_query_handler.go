package queries

import (
	"context"

	"gorm.io/gorm"

	"pasteleria/internal/core/domain/model/user"
	"pasteleria/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order with visibility checks.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order when the viewer is allowed to see it.
// Customers get a ForbiddenError for orders that are not theirs, delivery
// users for orders not assigned to them. A missing order is reported with
// an error wrapping errs.ErrObjectNotFound.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := fetchOrders(ctx, h.db, "o.id = ?", query.OrderID().Bytes())
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	resp := orders[0]
	switch query.Rol() {
	case user.Admin:
		return resp, nil

	case user.Cliente:
		if !resp.CustomerID.IsEqual(query.ViewerID()) {
			return OrderResponse{}, errs.NewForbiddenError(
				query.Rol().String(), "view another customer's order")
		}
		return resp, nil

	case user.Delivery:
		if resp.Delivery == nil || !resp.Delivery.DeliveryID.IsEqual(query.ViewerID()) {
			return OrderResponse{}, errs.NewForbiddenError(
				query.Rol().String(), "view an order not assigned to them")
		}
		return resp, nil

	default:
		return OrderResponse{}, errs.NewForbiddenError(query.Rol().String(), "view orders")
	}
}
