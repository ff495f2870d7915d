package order

import (
	"fmt"

	"pasteleria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pendiente ──> EnPreparacion ──> PorEntregar ──> EnCamino ──> Entregado
//	    │               │                │             │
//	    └───────────────┴────────────────┴─────────────┴──> Cancelado
//
// The forward chain never skips a step. Entregado and Cancelado are
// terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pendiente is the initial status when an order is first created.
	Pendiente

	// EnPreparacion indicates the bakery is preparing the order.
	EnPreparacion

	// PorEntregar indicates the order is ready and waiting for pickup.
	PorEntregar

	// EnCamino indicates the delivery person is on the way.
	EnCamino

	// Entregado indicates the order was delivered. Terminal.
	Entregado

	// Cancelado indicates the order was cancelled. Terminal, reachable
	// from every non-terminal status.
	Cancelado
)

// getStatusStrings returns the wire representation of each status,
// matching the values persisted in the estado column and exchanged
// with clients.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Pendiente:     "PENDIENTE",
		EnPreparacion: "EN_PREPARACION",
		PorEntregar:   "POR_ENTREGAR",
		EnCamino:      "EN_CAMINO",
		Entregado:     "ENTREGADO",
		Cancelado:     "CANCELADO",
	}
}

// getValidStatusStrings returns only valid statuses, used for validation
// and for parsing client input.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pendiente:     "PENDIENTE",
		EnPreparacion: "EN_PREPARACION",
		PorEntregar:   "POR_ENTREGAR",
		EnCamino:      "EN_CAMINO",
		Entregado:     "ENTREGADO",
		Cancelado:     "CANCELADO",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns a ValueIsInvalidError for anything outside the six valid values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("estado", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the six valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("estado", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Entregado || s == Cancelado
}

// next returns the successor in the forward chain, or Unknown when the
// status has no forward successor.
func (s Status) next() Status {
	switch s {
	case Pendiente:
		return EnPreparacion
	case EnPreparacion:
		return PorEntregar
	case PorEntregar:
		return EnCamino
	case EnCamino:
		return Entregado
	default:
		return Unknown
	}
}

// CanTransitionTo reports whether target is reachable from s in a single
// step: the next link of the forward chain, or Cancelado from any
// non-terminal status.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == Cancelado {
		return true
	}
	return s.next() == target
}

// TransitionTo returns the target status when the transition is legal.
// Returns an IllegalTransitionError otherwise; this is the only path
// through which an order status ever changes.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewIllegalTransitionError(s.String(), target.String())
	}
	return target, nil
}

// CanAssignDelivery reports whether a delivery assignment may be created or
// replaced while the order is in this status. Assignment is frozen once the
// order is EnCamino or later.
func (s Status) CanAssignDelivery() bool {
	return s == Pendiente || s == EnPreparacion || s == PorEntregar
}
