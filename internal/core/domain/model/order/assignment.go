package order

import (
	"time"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/errs"
)

// Assignment binds an order to exactly one delivery-role user. The delivery
// person's name and phone are denormalized snapshots so views can render
// contact details without a join.
type Assignment struct {
	deliveryID       kernel.UUID
	nombreDelivery   string
	telefonoDelivery string
	fechaAsignacion  time.Time
	fechaEntrega     *time.Time
}

// NewAssignment creates an assignment snapshot for a delivery user.
func NewAssignment(deliveryID kernel.UUID, nombre, telefono string) (Assignment, error) {
	if err := deliveryID.Validate(); err != nil {
		return Assignment{}, err
	}
	if nombre == "" {
		return Assignment{}, errs.NewValueIsRequiredError("nombreDelivery")
	}

	return Assignment{
		deliveryID:       deliveryID,
		nombreDelivery:   nombre,
		telefonoDelivery: telefono,
		fechaAsignacion:  time.Now().UTC(),
	}, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	deliveryID kernel.UUID,
	nombre, telefono string,
	fechaAsignacion time.Time,
	fechaEntrega *time.Time,
) (Assignment, error) {
	assignment, err := NewAssignment(deliveryID, nombre, telefono)
	if err != nil {
		return Assignment{}, err
	}
	assignment.fechaAsignacion = fechaAsignacion
	assignment.fechaEntrega = fechaEntrega
	return assignment, nil
}

// DeliveryID returns the assigned delivery user's identifier.
func (a Assignment) DeliveryID() kernel.UUID {
	return a.deliveryID
}

// NombreDelivery returns the delivery person's name snapshot.
func (a Assignment) NombreDelivery() string {
	return a.nombreDelivery
}

// TelefonoDelivery returns the delivery person's phone snapshot.
func (a Assignment) TelefonoDelivery() string {
	return a.telefonoDelivery
}

// FechaAsignacion returns when the assignment was created.
func (a Assignment) FechaAsignacion() time.Time {
	return a.fechaAsignacion
}

// FechaEntrega returns the delivery timestamp, or nil while undelivered.
func (a Assignment) FechaEntrega() *time.Time {
	return a.fechaEntrega
}
