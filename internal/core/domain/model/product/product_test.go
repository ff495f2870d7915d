package product_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/product"
	"pasteleria/internal/pkg/errs"
)

func createValidProduct(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		kernel.NewUUID(),
		"Torta de Chocolate",
		"Bizcocho humedo con cobertura de chocolate",
		decimal.RequireFromString("45.00"),
		"https://cdn.pasteleria.test/torta.jpg",
		"Tortas",
	)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("should create available product with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "Torta de Chocolate", "desc",
			decimal.RequireFromString("45.00"), "", "Tortas")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Torta de Chocolate", p.Nombre())
		assert.Equal(t, "Tortas", p.Categoria())
		assert.True(t, p.Disponible())
		assert.False(t, p.FechaCreacion().IsZero())
		assert.Equal(t, p.FechaCreacion(), p.FechaActualizacion())
	})

	t.Run("empty category falls back to the default", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Torta", "",
			decimal.RequireFromString("45.00"), "", "")

		require.NoError(t, err)
		assert.Equal(t, product.DefaultCategoria, p.Categoria())
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Muestra", "",
			decimal.Zero, "", "")

		require.NoError(t, err)
	})

	t.Run("should return error for blank name", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "   ", "",
			decimal.RequireFromString("45.00"), "", "")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error for negative price", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Torta", "",
			decimal.RequireFromString("-1.00"), "", "")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, "Torta", "",
			decimal.RequireFromString("45.00"), "", "")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestProductUpdate(t *testing.T) {
	t.Run("should replace editable fields and bump the timestamp", func(t *testing.T) {
		p := createValidProduct(t)
		created := p.FechaCreacion()

		err := p.Update("Torta de Fresa", "con fresas frescas",
			decimal.RequireFromString("50.00"), "", "Tortas", false)

		require.NoError(t, err)
		assert.Equal(t, "Torta de Fresa", p.Nombre())
		assert.True(t, p.Precio().Equal(decimal.RequireFromString("50.00")))
		assert.False(t, p.Disponible())
		assert.Equal(t, created, p.FechaCreacion())
		assert.False(t, p.FechaActualizacion().Before(created))
	})

	t.Run("should reject blank name", func(t *testing.T) {
		p := createValidProduct(t)

		err := p.Update("", "", decimal.RequireFromString("50.00"), "", "", true)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "Torta de Chocolate", p.Nombre())
	})

	t.Run("should reject negative price", func(t *testing.T) {
		p := createValidProduct(t)

		err := p.Update("Torta", "", decimal.RequireFromString("-5.00"), "", "", true)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProductToggleDisponible(t *testing.T) {
	p := createValidProduct(t)
	require.True(t, p.Disponible())

	p.ToggleDisponible()
	assert.False(t, p.Disponible())

	p.ToggleDisponible()
	assert.True(t, p.Disponible())
}

func TestRestoreProduct(t *testing.T) {
	t.Run("keeps stored state verbatim", func(t *testing.T) {
		id := kernel.NewUUID()
		creacion := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)
		actualizacion := creacion.Add(48 * time.Hour)

		p, err := product.RestoreProduct(id, "Torta de Chocolate", "desc",
			decimal.RequireFromString("45.00"), "", "Tortas",
			false, creacion, actualizacion)

		require.NoError(t, err)
		assert.False(t, p.Disponible())
		assert.Equal(t, creacion, p.FechaCreacion())
		assert.Equal(t, actualizacion, p.FechaActualizacion())
	})
}

func TestProductValidate(t *testing.T) {
	var p product.Product

	assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
}
