package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// DefaultCategoria is assigned when a product is created without a category.
const DefaultCategoria = "General"

// Product represents a catalog entry of the bakery. The catalog price is the
// live price used when new orders are created; existing orders keep their
// own snapshots and are unaffected by later changes here.
type Product struct {
	id                 kernel.UUID
	nombre             string
	descripcion        string
	precio             decimal.Decimal
	imagenURL          string
	categoria          string
	disponible         bool
	fechaCreacion      time.Time
	fechaActualizacion time.Time

	isConstructed bool
}

// NewProduct creates an available product. Name is required, the price must
// be non-negative, and an empty category falls back to DefaultCategoria.
func NewProduct(
	id kernel.UUID,
	nombre string,
	descripcion string,
	precio decimal.Decimal,
	imagenURL string,
	categoria string,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(nombre) == "" {
		return nil, errs.NewValueIsRequiredError("nombre")
	}
	if precio.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("precio",
			fmt.Errorf("%s is negative", precio))
	}
	if categoria == "" {
		categoria = DefaultCategoria
	}

	now := time.Now().UTC()
	return &Product{
		id:                 id,
		nombre:             nombre,
		descripcion:        descripcion,
		precio:             precio,
		imagenURL:          imagenURL,
		categoria:          categoria,
		disponible:         true,
		fechaCreacion:      now,
		fechaActualizacion: now,
		isConstructed:      true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	nombre string,
	descripcion string,
	precio decimal.Decimal,
	imagenURL string,
	categoria string,
	disponible bool,
	fechaCreacion time.Time,
	fechaActualizacion time.Time,
) (*Product, error) {
	p, err := NewProduct(id, nombre, descripcion, precio, imagenURL, categoria)
	if err != nil {
		return nil, err
	}
	p.disponible = disponible
	p.fechaCreacion = fechaCreacion
	p.fechaActualizacion = fechaActualizacion
	return p, nil
}

// Validate ensures the Product instance was created through a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Nombre returns the product name.
func (p *Product) Nombre() string {
	return p.nombre
}

// Descripcion returns the product description.
func (p *Product) Descripcion() string {
	return p.descripcion
}

// Precio returns the current catalog price.
func (p *Product) Precio() decimal.Decimal {
	return p.precio
}

// ImagenURL returns the product image URL.
func (p *Product) ImagenURL() string {
	return p.imagenURL
}

// Categoria returns the product category.
func (p *Product) Categoria() string {
	return p.categoria
}

// Disponible reports whether the product can currently be ordered.
func (p *Product) Disponible() bool {
	return p.disponible
}

// FechaCreacion returns when the product was created.
func (p *Product) FechaCreacion() time.Time {
	return p.fechaCreacion
}

// FechaActualizacion returns when the product was last modified.
func (p *Product) FechaActualizacion() time.Time {
	return p.fechaActualizacion
}

// Update replaces the editable catalog fields and bumps the modification
// timestamp. The same validation rules as NewProduct apply.
func (p *Product) Update(
	nombre string,
	descripcion string,
	precio decimal.Decimal,
	imagenURL string,
	categoria string,
	disponible bool,
) error {
	if strings.TrimSpace(nombre) == "" {
		return errs.NewValueIsRequiredError("nombre")
	}
	if precio.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("precio",
			fmt.Errorf("%s is negative", precio))
	}
	if categoria == "" {
		categoria = DefaultCategoria
	}

	p.nombre = nombre
	p.descripcion = descripcion
	p.precio = precio
	p.imagenURL = imagenURL
	p.categoria = categoria
	p.disponible = disponible
	p.fechaActualizacion = time.Now().UTC()
	return nil
}

// ToggleDisponible flips the availability flag.
func (p *Product) ToggleDisponible() {
	p.disponible = !p.disponible
	p.fechaActualizacion = time.Now().UTC()
}
