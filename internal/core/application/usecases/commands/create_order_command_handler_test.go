package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pasteleria/internal/core/application/usecases/commands"
	"pasteleria/internal/core/domain/model/order"
	"pasteleria/internal/core/domain/model/product"
	"pasteleria/internal/pkg/errs"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	torta := newTestProduct(t, "15.00")
	kekito := newTestProduct(t, "2.50")

	cmd, _ := commands.NewCreateOrderCommand(
		newTestDeliveryUser(t).ID(),
		"Av. Los Pinos 123",
		"entregar antes de las 6",
		[]commands.ItemData{
			{ProductID: torta.ID(), Cantidad: 2},
			{ProductID: kekito.ID(), Cantidad: 2},
		},
	)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, torta.ID()).Return(torta, nil).Once()
	productRepo.On("Get", mock.Anything, kekito.ID()).Return(kekito, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, order.Pendiente, created.Status())
	assert.True(t, created.Total().Equal(decimal.RequireFromString("35.00")))
	require.Len(t, created.Items(), 2)
	assert.Equal(t, torta.Nombre(), created.Items()[0].NombreProducto())
	assert.True(t, created.Items()[0].Subtotal().Equal(decimal.RequireFromString("30.00")))
	assert.True(t, created.Items()[1].Subtotal().Equal(decimal.RequireFromString("5.00")))

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnavailableProduct(t *testing.T) {
	ctx := t.Context()
	torta := newTestProduct(t, "15.00")
	torta.ToggleDisponible()

	cmd, _ := commands.NewCreateOrderCommand(
		newTestDeliveryUser(t).ID(),
		"Av. Los Pinos 123",
		"",
		[]commands.ItemData{{ProductID: torta.ID(), Cantidad: 1}},
	)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, torta.ID()).Return(torta, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrObjectUnavailable)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	missingID := newTestProduct(t, "1.00").ID()

	cmd, _ := commands.NewCreateOrderCommand(
		newTestDeliveryUser(t).ID(),
		"Av. Los Pinos 123",
		"",
		[]commands.ItemData{{ProductID: missingID, Cantidad: 1}},
	)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, missingID).
		Return((*product.Product)(nil), errs.NewObjectNotFoundError("productId", missingID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderingUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, commands.CreateOrderCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
