package order_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/pkg/errs"
)

func TestNewItem(t *testing.T) {
	validID := kernel.NewUUID()
	validProductID := kernel.NewUUID()

	t.Run("should compute subtotal from quantity and unit price", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID,
			"Torta de Chocolate", 3, decimal.RequireFromString("15.50"))

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(validID))
		assert.True(t, item.ProductID().IsEqual(validProductID))
		assert.Equal(t, "Torta de Chocolate", item.NombreProducto())
		assert.Equal(t, 3, item.Cantidad())
		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("46.50")),
			"got %s", item.Subtotal())
	})

	t.Run("zero priced items are allowed", func(t *testing.T) {
		item, err := order.NewItem(validID, validProductID,
			"Muestra Gratis", 1, decimal.Zero)

		require.NoError(t, err)
		assert.True(t, item.Subtotal().IsZero())
	})

	t.Run("should return error for empty product name", func(t *testing.T) {
		_, err := order.NewItem(validID, validProductID,
			"", 1, decimal.RequireFromString("10.00"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error for non-positive quantity", func(t *testing.T) {
		for _, cantidad := range []int{0, -1} {
			_, err := order.NewItem(validID, validProductID,
				"Torta", cantidad, decimal.RequireFromString("10.00"))

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should return error for negative price", func(t *testing.T) {
		_, err := order.NewItem(validID, validProductID,
			"Torta", 1, decimal.RequireFromString("-0.01"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return error for invalid IDs", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewItem(invalidID, validProductID,
			"Torta", 1, decimal.RequireFromString("10.00"))
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

		_, err = order.NewItem(validID, invalidID,
			"Torta", 1, decimal.RequireFromString("10.00"))
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("keeps the stored subtotal verbatim", func(t *testing.T) {
		// The stored subtotal wins even when it disagrees with the
		// arithmetic; it is a historical snapshot.
		item, err := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(),
			"Torta de Chocolate", 2,
			decimal.RequireFromString("15.00"),
			decimal.RequireFromString("28.00"))

		require.NoError(t, err)
		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("28.00")))
	})
}

func TestNewAssignment(t *testing.T) {
	t.Run("should create assignment snapshot", func(t *testing.T) {
		deliveryID := kernel.NewUUID()

		assignment, err := order.NewAssignment(deliveryID, "Pedro Reparto", "+51 999 888 777")

		require.NoError(t, err)
		assert.True(t, assignment.DeliveryID().IsEqual(deliveryID))
		assert.Equal(t, "Pedro Reparto", assignment.NombreDelivery())
		assert.Equal(t, "+51 999 888 777", assignment.TelefonoDelivery())
		assert.False(t, assignment.FechaAsignacion().IsZero())
		assert.Nil(t, assignment.FechaEntrega())
	})

	t.Run("phone is optional", func(t *testing.T) {
		_, err := order.NewAssignment(kernel.NewUUID(), "Pedro Reparto", "")

		require.NoError(t, err)
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := order.NewAssignment(kernel.NewUUID(), "", "+51 999 888 777")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error for invalid delivery ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewAssignment(invalidID, "Pedro Reparto", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRestoreAssignment(t *testing.T) {
	t.Run("keeps stored timestamps", func(t *testing.T) {
		fechaAsignacion := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
		fechaEntrega := fechaAsignacion.Add(2 * time.Hour)

		assignment, err := order.RestoreAssignment(kernel.NewUUID(),
			"Pedro Reparto", "", fechaAsignacion, &fechaEntrega)

		require.NoError(t, err)
		assert.Equal(t, fechaAsignacion, assignment.FechaAsignacion())
		require.NotNil(t, assignment.FechaEntrega())
		assert.Equal(t, fechaEntrega, *assignment.FechaEntrega())
	})
}
