package ports

import (
	"context"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
