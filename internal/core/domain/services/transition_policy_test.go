package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/core/domain/model/user"
	"pasteleria/internal/core/domain/services"
	"pasteleria/internal/pkg/errs"
)

func createOrderAssignedTo(t *testing.T, deliveryID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(),
		"Torta de Chocolate", 1, decimal.RequireFromString("45.00"))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		"Jr. Union 123, Lima", "", []order.Item{item})
	require.NoError(t, err)

	if err = deliveryID.Validate(); err == nil {
		assignment, aerr := order.NewAssignment(deliveryID, "Pedro Reparto", "")
		require.NoError(t, aerr)
		require.NoError(t, o.AssignDelivery(assignment))
	}
	return o
}

func TestTransitionPolicyAuthorize(t *testing.T) {
	policy := services.NewTransitionPolicy(false)

	t.Run("admin may request any target", func(t *testing.T) {
		o := createOrderAssignedTo(t, kernel.UUID{})

		for _, target := range []order.Status{
			order.EnPreparacion, order.PorEntregar, order.EnCamino,
			order.Entregado, order.Cancelado,
		} {
			assert.NoError(t, policy.Authorize(user.Admin, kernel.NewUUID(), o, target),
				target.String())
		}
	})

	t.Run("assigned delivery may request EN_CAMINO and ENTREGADO", func(t *testing.T) {
		deliveryID := kernel.NewUUID()
		o := createOrderAssignedTo(t, deliveryID)

		assert.NoError(t, policy.Authorize(user.Delivery, deliveryID, o, order.EnCamino))
		assert.NoError(t, policy.Authorize(user.Delivery, deliveryID, o, order.Entregado))
	})

	t.Run("delivery may not request other targets", func(t *testing.T) {
		deliveryID := kernel.NewUUID()
		o := createOrderAssignedTo(t, deliveryID)

		for _, target := range []order.Status{
			order.EnPreparacion, order.PorEntregar, order.Cancelado,
		} {
			err := policy.Authorize(user.Delivery, deliveryID, o, target)

			require.Error(t, err, target.String())
			assert.ErrorIs(t, err, errs.ErrForbidden)
		}
	})

	t.Run("delivery may not touch an order assigned to someone else", func(t *testing.T) {
		o := createOrderAssignedTo(t, kernel.NewUUID())

		err := policy.Authorize(user.Delivery, kernel.NewUUID(), o, order.EnCamino)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("delivery may not touch an unassigned order", func(t *testing.T) {
		o := createOrderAssignedTo(t, kernel.UUID{})

		err := policy.Authorize(user.Delivery, kernel.NewUUID(), o, order.EnCamino)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("cliente may never change status", func(t *testing.T) {
		o := createOrderAssignedTo(t, kernel.UUID{})

		err := policy.Authorize(user.Cliente, kernel.NewUUID(), o, order.Cancelado)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown target is rejected", func(t *testing.T) {
		o := createOrderAssignedTo(t, kernel.UUID{})

		err := policy.Authorize(user.Admin, kernel.NewUUID(), o, order.Unknown)

		require.Error(t, err)
	})
}

func TestTransitionPolicyAdminMaySkipChain(t *testing.T) {
	assert.False(t, services.NewTransitionPolicy(false).AdminMaySkipChain())
	assert.True(t, services.NewTransitionPolicy(true).AdminMaySkipChain())
}
