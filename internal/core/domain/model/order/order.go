package order

import (
	"errors"
	"strings"
	"time"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when an order is created without line items.
	ErrItemsAreRequired = errors.New("order must contain at least one item")
)

// Order is the aggregate root of the ordering domain. It owns the order's
// line items, delivery assignment, and lifecycle status, and it is the only
// place where status transitions and assignment changes happen.
//
// Order maintains these invariants:
//   - total always equals the sum of the item subtotals
//   - status only changes through the transition table (TransitionTo)
//   - at most one active delivery assignment exists
//   - the assignment is frozen once the order reaches EnCamino
//   - orders are never deleted; Entregado and Cancelado are final
//
// Prices are snapshots taken at creation. The aggregate never consults the
// catalog after construction.
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	fecha            time.Time
	status           Status
	direccionEntrega string
	notas            string
	items            []Item
	total            decimal.Decimal
	assignment       *Assignment

	// version supports optimistic concurrency control in persistence.
	version int

	isConstructed bool
}

// NewOrder creates an order in Pendiente status from validated line items.
// The delivery address must be non-blank after trimming and items non-empty;
// the total is computed once here as the sum of the item subtotals.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	direccionEntrega string,
	notas string,
	items []Item,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	direccionEntrega = strings.TrimSpace(direccionEntrega)
	if direccionEntrega == "" {
		return nil, errs.NewValueIsRequiredError("direccionEntrega")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("items", ErrItemsAreRequired)
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return &Order{
		id:               id,
		customerID:       customerID,
		fecha:            time.Now().UTC(),
		status:           Pendiente,
		direccionEntrega: direccionEntrega,
		notas:            notas,
		items:            items,
		total:            total,
		isConstructed:    true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation rules: status, total, and timestamps are taken as stored.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	fecha time.Time,
	status Status,
	direccionEntrega string,
	notas string,
	items []Item,
	total decimal.Decimal,
	assignment *Assignment,
	version int,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:               id,
		customerID:       customerID,
		fecha:            fecha,
		status:           status,
		direccionEntrega: direccionEntrega,
		notas:            notas,
		items:            items,
		total:            total,
		assignment:       assignment,
		version:          version,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Fecha returns when the order was created.
func (o *Order) Fecha() time.Time {
	return o.fecha
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DireccionEntrega returns the delivery address.
func (o *Order) DireccionEntrega() string {
	return o.direccionEntrega
}

// Notas returns the optional order notes.
func (o *Order) Notas() string {
	return o.notas
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total, fixed at creation.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Assignment returns the current delivery assignment, or nil when the order
// has none.
func (o *Order) Assignment() *Assignment {
	if o.assignment == nil {
		return nil
	}
	assignment := *o.assignment
	return &assignment
}

// Version returns the optimistic concurrency version.
func (o *Order) Version() int {
	return o.version
}

// TransitionTo moves the order to the target status when the transition
// table allows it. No other field changes, except that reaching Entregado
// stamps the delivery time on the assignment.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Entregado && o.assignment != nil {
		now := time.Now().UTC()
		o.assignment.fechaEntrega = &now
	}
	return nil
}

// ForceTransitionTo moves the order to the target status without consulting
// the forward chain. Terminal states remain final even here: this exists for
// the admin-exempt policy mode, not for resurrecting finished orders.
func (o *Order) ForceTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewIllegalTransitionError(o.status.String(), target.String())
	}

	o.status = target
	if target == Entregado && o.assignment != nil {
		now := time.Now().UTC()
		o.assignment.fechaEntrega = &now
	}
	return nil
}

// AssignDelivery creates or replaces the order's delivery assignment.
//
// Assignment is only permitted while the order is Pendiente, EnPreparacion,
// or PorEntregar; afterwards it is frozen and an InvalidStateError is
// returned. Re-assigning the same delivery user is a no-op that keeps the
// original snapshot.
func (o *Order) AssignDelivery(assignment Assignment) error {
	if !o.status.CanAssignDelivery() {
		return errs.NewInvalidStateError("assign delivery", o.status.String())
	}

	if o.assignment != nil && o.assignment.deliveryID.IsEqual(assignment.deliveryID) {
		return nil
	}

	o.assignment = &assignment
	return nil
}

// IsAssignedTo reports whether the order is currently assigned to the given
// delivery user.
func (o *Order) IsAssignedTo(deliveryID kernel.UUID) bool {
	return o.assignment != nil && o.assignment.deliveryID.IsEqual(deliveryID)
}
