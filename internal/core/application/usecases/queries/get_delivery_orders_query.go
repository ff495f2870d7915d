package queries

import (
	"errors"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/guard"
)

var ErrGetDeliveryOrdersQueryIsNotConstructed = errors.New(
	"GetDeliveryOrdersQuery must be created via NewGetDeliveryOrdersQuery constructor",
)

// GetDeliveryOrdersQuery retrieves the orders currently assigned to one
// delivery user.
type GetDeliveryOrdersQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryOrdersQuery creates a query for a delivery user's workload.
func NewGetDeliveryOrdersQuery(deliveryID kernel.UUID) (GetDeliveryOrdersQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryOrdersQuery{}, err
	}

	return GetDeliveryOrdersQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryOrdersQueryIsNotConstructed if validation fails.
func (q GetDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrdersQueryIsNotConstructed)
}

// DeliveryID returns the delivery user whose orders are requested.
func (q GetDeliveryOrdersQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}
