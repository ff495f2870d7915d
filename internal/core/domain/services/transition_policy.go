package services

import (
	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/core/domain/model/user"

	"pasteleria/internal/pkg/errs"
)

// TransitionPolicy is a domain service that decides whether an actor may
// request a given order status change. The transition table itself lives in
// the order aggregate; this service adds the role dimension on top of it.
//
// Role rules:
//   - CLIENTE may never change an order status
//   - DELIVERY may only request EN_CAMINO and ENTREGADO, and only on orders
//     currently assigned to them
//   - ADMIN may request any transition the table allows; with the
//     unrestricted option, ADMIN may additionally jump the forward chain
//     (terminal states still accept no transition)
//
// Example usage:
//
//	policy := services.NewTransitionPolicy(false)
//	if err := policy.Authorize(actorRole, actorID, ord, target); err != nil {
//	    return err
//	}
//	if err := ord.TransitionTo(target); err != nil {
//	    return err
//	}
type TransitionPolicy struct {
	adminUnrestricted bool
}

// NewTransitionPolicy creates a transition policy. When adminUnrestricted is
// true, administrators may skip steps of the forward chain; the strict chain
// remains in force for everyone else.
func NewTransitionPolicy(adminUnrestricted bool) TransitionPolicy {
	return TransitionPolicy{adminUnrestricted: adminUnrestricted}
}

// AdminMaySkipChain reports whether administrators are exempt from the
// no-skipping rule of the forward chain.
func (p TransitionPolicy) AdminMaySkipChain() bool {
	return p.adminUnrestricted
}

// Authorize checks that the actor may request the transition of the given
// order to target. Returns a ForbiddenError when the role or identity lacks
// the right; legality of the transition itself is checked by the aggregate.
func (p TransitionPolicy) Authorize(
	rol user.Role,
	actorID kernel.UUID,
	o *order.Order,
	target order.Status,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	switch rol {
	case user.Admin:
		return nil

	case user.Delivery:
		if target != order.EnCamino && target != order.Entregado {
			return errs.NewForbiddenError(rol.String(), "request status "+target.String())
		}
		if !o.IsAssignedTo(actorID) {
			return errs.NewForbiddenError(rol.String(), "update an order not assigned to them")
		}
		return nil

	default:
		return errs.NewForbiddenError(rol.String(), "change order status")
	}
}
