package commands

import (
	"context"

	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/pkg/errs"
)

// AssignDeliveryCommandHandler assigns delivery personnel to orders.
// The assignment snapshots the delivery user's name and phone into the
// order, so later profile edits never rewrite delivery history. Assigning
// does not advance the order's status; that remains a separate transition.
//
// Example:
//
//	handler := NewAssignDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewAssignDeliveryCommand(orderID, deliveryID)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignDeliveryCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment.
// Requires an AssignmentUoWFactory for transactional access to orders and users.
func NewAssignDeliveryCommandHandler(uowFactory AssignmentUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// The target user must be an active DELIVERY user; anyone else is reported
// as not found so the endpoint does not reveal which accounts exist. Assignment
// is rejected once the order has moved past PorEntregar, and re-assigning
// the same user is a no-op.
func (h *AssignDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd AssignDeliveryCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryUser, err := uow.UserRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}
	if !deliveryUser.IsActiveDelivery() {
		return nil, errs.NewObjectNotFoundError("deliveryId", cmd.DeliveryID())
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	assignment, err := order.NewAssignment(
		deliveryUser.ID(),
		deliveryUser.Nombre(),
		deliveryUser.Telefono(),
	)
	if err != nil {
		return nil, err
	}

	if err = aggregate.AssignDelivery(assignment); err != nil {
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
