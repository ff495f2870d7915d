package commands

import (
	"context"
	"errors"

	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/core/domain/model/user"
	"pasteleria/internal/core/domain/services"
	"pasteleria/internal/pkg/errs"
)

// maxStatusUpdateAttempts bounds the optimistic concurrency retry loop.
// Each retry re-reads the order and re-validates the transition against
// the fresh state, so a competing writer surfaces as IllegalTransitionError
// rather than a silently lost update.
const maxStatusUpdateAttempts = 3

// ChangeOrderStatusCommandHandler handles order status transitions.
// Authorization (who may request what) is delegated to TransitionPolicy,
// legality of the transition itself to the order aggregate.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, policy)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.EnCamino, deliveryID, user.Delivery)
//
//	updated, err := handler.Handle(ctx, cmd)
//	var transitionErr *errs.IllegalTransitionError
//	if errors.As(err, &transitionErr) {
//	    log.Printf("rejected: %v", transitionErr)
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.TransitionPolicy
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.TransitionPolicy,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the status change command.
// Reads the order, authorizes the actor, applies the transition, and writes
// the order back under optimistic concurrency. When a concurrent writer
// invalidates the version, the whole read-validate-write cycle is retried
// against the fresh state up to maxStatusUpdateAttempts times.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxStatusUpdateAttempts; attempt++ {
		updated, err := h.attempt(ctx, cmd)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, errs.ErrVersionIsInvalid) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (h *ChangeOrderStatusCommandHandler) attempt(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.Authorize(cmd.Rol(), cmd.ActorID(), aggregate, cmd.Target()); err != nil {
		return nil, err
	}

	if cmd.Rol() == user.Admin && h.policy.AdminMaySkipChain() {
		err = aggregate.ForceTransitionTo(cmd.Target())
	} else {
		err = aggregate.TransitionTo(cmd.Target())
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
