// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using the
	// aggregate's version for optimistic concurrency control. When the
	// stored version no longer matches, Update returns an error wrapping
	// errs.ErrVersionIsInvalid and the caller must re-read the aggregate
	// and re-evaluate its decision against the fresh state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, complete
	// with items and delivery assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
