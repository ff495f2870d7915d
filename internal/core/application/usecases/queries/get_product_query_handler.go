package queries

import (
	"context"

	"gorm.io/gorm"

	"pasteleria/internal/pkg/errs"
)

// GetProductQueryHandler retrieves single catalog products.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for product lookups.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns the product or an error wrapping errs.ErrObjectNotFound.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	products, err := fetchProducts(ctx, h.db, "id = ?", query.ProductID().Bytes())
	if err != nil {
		return ProductResponse{}, err
	}
	if len(products) == 0 {
		return ProductResponse{}, errs.NewObjectNotFoundError("productId", query.ProductID())
	}

	return products[0], nil
}
