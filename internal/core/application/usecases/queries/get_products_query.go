package queries

import (
	"errors"
	"strings"

	"pasteleria/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via one of its constructors",
	)
	ErrCategoriaIsRequired  = errors.New("categoria is required")
	ErrSearchTermIsRequired = errors.New("search term is required")
)

// GetProductsQuery retrieves catalog products. The constructor used decides
// the listing: the public ones only see available products, the admin
// listing sees everything.
//
// Example:
//
//	query, err := NewSearchProductsQuery("chocolate")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetProductsQueryHandler(db)
//	matches, err := handler.Handle(ctx, query)
type GetProductsQuery struct {
	availableOnly bool
	categoria     string
	search        string

	guard guard.ConstructorGuard
}

// NewAvailableProductsQuery creates the public catalog listing.
func NewAvailableProductsQuery() GetProductsQuery {
	return GetProductsQuery{
		availableOnly: true,
		guard:         guard.NewConstructorGuard(),
	}
}

// NewProductsByCategoryQuery creates the public listing of available
// products in one category.
func NewProductsByCategoryQuery(categoria string) (GetProductsQuery, error) {
	categoria = strings.TrimSpace(categoria)
	if categoria == "" {
		return GetProductsQuery{}, ErrCategoriaIsRequired
	}

	return GetProductsQuery{
		availableOnly: true,
		categoria:     categoria,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// NewSearchProductsQuery creates the public name search over available
// products.
func NewSearchProductsQuery(term string) (GetProductsQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return GetProductsQuery{}, ErrSearchTermIsRequired
	}

	return GetProductsQuery{
		availableOnly: true,
		search:        term,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// NewAllProductsQuery creates the admin listing, unavailable products
// included.
func NewAllProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetProductsQueryIsNotConstructed if validation fails.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// AvailableOnly reports whether unavailable products are excluded.
func (q GetProductsQuery) AvailableOnly() bool {
	return q.availableOnly
}

// Categoria returns the category filter, empty when not filtering.
func (q GetProductsQuery) Categoria() string {
	return q.categoria
}

// Search returns the name search term, empty when not searching.
func (q GetProductsQuery) Search() string {
	return q.search
}
