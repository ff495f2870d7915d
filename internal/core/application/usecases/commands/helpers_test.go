package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/core/domain/model/product"
	"pasteleria/internal/core/domain/model/user"
)

func newTestProduct(t *testing.T, precio string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		kernel.NewUUID(),
		"Torta de Chocolate",
		"Torta humeda de chocolate",
		decimal.RequireFromString(precio),
		"https://example.com/torta.jpg",
		"Tortas",
	)
	require.NoError(t, err)
	return p
}

func newTestOrderInStatus(t *testing.T, status order.Status, assignment *order.Assignment) *order.Order {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Torta de Chocolate",
		2,
		decimal.RequireFromString("12.50"),
	)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Now().UTC(),
		status,
		"Av. Los Pinos 123",
		"",
		[]order.Item{item},
		item.Subtotal(),
		assignment,
		1,
	)
	require.NoError(t, err)
	return o
}

func newTestDeliveryUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(
		kernel.NewUUID(),
		"Pedro Reparto",
		"pedro@pasteleria.test",
		"+51 999 888 777",
		"$2a$10$abcdefghijklmnopqrstuv",
		user.Delivery,
	)
	require.NoError(t, err)
	return u
}
