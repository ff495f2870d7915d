package commands

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a full replacement of a product's
// editable fields, availability included.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	nombre      string
	descripcion string
	precio      decimal.Decimal
	imagenURL   string
	categoria   string
	disponible  bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	nombre string,
	descripcion string,
	precio decimal.Decimal,
	imagenURL string,
	categoria string,
	disponible bool,
) (UpdateProductCommand, error) {
	productCommand := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setNombre(nombre),
		productCommand.setPrecio(precio),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	productCommand.descripcion = descripcion
	productCommand.imagenURL = imagenURL
	productCommand.categoria = categoria
	productCommand.disponible = disponible
	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateProductCommandIsNotConstructed if validation fails.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Nombre returns the new product name.
func (c UpdateProductCommand) Nombre() string {
	return c.nombre
}

// Descripcion returns the new description.
func (c UpdateProductCommand) Descripcion() string {
	return c.descripcion
}

// Precio returns the new unit price.
func (c UpdateProductCommand) Precio() decimal.Decimal {
	return c.precio
}

// ImagenURL returns the new image URL.
func (c UpdateProductCommand) ImagenURL() string {
	return c.imagenURL
}

// Categoria returns the new category.
func (c UpdateProductCommand) Categoria() string {
	return c.categoria
}

// Disponible returns the new availability flag.
func (c UpdateProductCommand) Disponible() bool {
	return c.disponible
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setNombre(nombre string) error {
	if strings.TrimSpace(nombre) == "" {
		return ErrProductNombreIsRequired
	}

	c.nombre = nombre
	return nil
}

func (c *UpdateProductCommand) setPrecio(precio decimal.Decimal) error {
	if precio.IsNegative() {
		return ErrPrecioIsInvalid
	}

	c.precio = precio
	return nil
}
