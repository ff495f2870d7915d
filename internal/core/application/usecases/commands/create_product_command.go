package commands

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"pasteleria/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNombreIsRequired = errors.New("nombre is required")
	ErrPrecioIsInvalid         = errors.New("precio must not be negative")
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	nombre      string
	descripcion string
	precio      decimal.Decimal
	imagenURL   string
	categoria   string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// Validates that the name is not blank and the price is non-negative.
func NewCreateProductCommand(
	nombre string,
	descripcion string,
	precio decimal.Decimal,
	imagenURL string,
	categoria string,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setNombre(nombre),
		productCommand.setPrecio(precio),
	); err != nil {
		return CreateProductCommand{}, err
	}

	productCommand.descripcion = descripcion
	productCommand.imagenURL = imagenURL
	productCommand.categoria = categoria
	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Nombre returns the product name.
func (c CreateProductCommand) Nombre() string {
	return c.nombre
}

// Descripcion returns the product description. May be empty.
func (c CreateProductCommand) Descripcion() string {
	return c.descripcion
}

// Precio returns the unit price.
func (c CreateProductCommand) Precio() decimal.Decimal {
	return c.precio
}

// ImagenURL returns the image URL. May be empty.
func (c CreateProductCommand) ImagenURL() string {
	return c.imagenURL
}

// Categoria returns the product category. An empty value falls back to the
// default category inside the aggregate.
func (c CreateProductCommand) Categoria() string {
	return c.categoria
}

func (c *CreateProductCommand) setNombre(nombre string) error {
	if strings.TrimSpace(nombre) == "" {
		return ErrProductNombreIsRequired
	}

	c.nombre = nombre
	return nil
}

func (c *CreateProductCommand) setPrecio(precio decimal.Decimal) error {
	if precio.IsNegative() {
		return ErrPrecioIsInvalid
	}

	c.precio = precio
	return nil
}
