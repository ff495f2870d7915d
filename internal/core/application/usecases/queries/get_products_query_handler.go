package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves catalog listings.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog listings.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle returns the products matching the query, ordered by name.
// Category matching is exact, name search is a case-insensitive substring
// match.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := ""
	args := make([]any, 0, 2)

	if query.AvailableOnly() {
		where = "disponible = TRUE"
	}
	if query.Categoria() != "" {
		where += " AND categoria = ?"
		args = append(args, query.Categoria())
	}
	if query.Search() != "" {
		where += " AND nombre ILIKE ?"
		args = append(args, "%"+query.Search()+"%")
	}

	return fetchProducts(ctx, h.db, where, args...)
}
