package order

import (
	"fmt"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item represents one product line inside an order. The product name and
// unit price are snapshots taken at order time: later catalog changes never
// affect an existing order.
//
// Invariant: subtotal == precioUnitario * cantidad, fixed at construction
// and never recomputed.
type Item struct {
	id             kernel.UUID
	productID      kernel.UUID
	nombreProducto string
	cantidad       int
	precioUnitario decimal.Decimal
	subtotal       decimal.Decimal
}

// NewItem creates an order line from a catalog snapshot and computes its
// subtotal. Quantity must be positive and the unit price non-negative.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	nombreProducto string,
	cantidad int,
	precioUnitario decimal.Decimal,
) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if nombreProducto == "" {
		return Item{}, errs.NewValueIsRequiredError("nombreProducto")
	}
	if cantidad <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("cantidad",
			fmt.Errorf("%d is not greater than 0", cantidad))
	}
	if precioUnitario.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("precioUnitario",
			fmt.Errorf("%s is negative", precioUnitario))
	}

	return Item{
		id:             id,
		productID:      productID,
		nombreProducto: nombreProducto,
		cantidad:       cantidad,
		precioUnitario: precioUnitario,
		subtotal:       precioUnitario.Mul(decimal.NewFromInt(int64(cantidad))),
	}, nil
}

// RestoreItem reconstructs an item from persistence. The stored subtotal is
// kept verbatim; it is a snapshot, not a derived value.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	nombreProducto string,
	cantidad int,
	precioUnitario decimal.Decimal,
	subtotal decimal.Decimal,
) (Item, error) {
	item, err := NewItem(id, productID, nombreProducto, cantidad, precioUnitario)
	if err != nil {
		return Item{}, err
	}
	item.subtotal = subtotal
	return item, nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced catalog product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// NombreProducto returns the product name snapshot.
func (i Item) NombreProducto() string {
	return i.nombreProducto
}

// Cantidad returns the ordered quantity.
func (i Item) Cantidad() int {
	return i.cantidad
}

// PrecioUnitario returns the unit price snapshot.
func (i Item) PrecioUnitario() decimal.Decimal {
	return i.precioUnitario
}

// Subtotal returns the stored line subtotal.
func (i Item) Subtotal() decimal.Decimal {
	return i.subtotal
}
