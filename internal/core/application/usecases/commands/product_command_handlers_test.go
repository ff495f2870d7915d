package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pasteleria/internal/core/application/usecases/commands"
	"pasteleria/internal/core/domain/model/kernel"
	"pasteleria/internal/pkg/errs"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(
		"Torta de Chocolate", "Torta humeda", decimal.RequireFromString("15.00"), "", "Tortas")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, created.Disponible())
	assert.Equal(t, "Tortas", created.Categoria())
	productRepo.AssertExpectations(t)
}

func TestNewCreateProductCommand_NegativePrecio(t *testing.T) {
	_, err := commands.NewCreateProductCommand(
		"Torta", "", decimal.RequireFromString("-1.00"), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPrecioIsInvalid)
}

func TestUpdateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := newTestProduct(t, "15.00")
	cmd, err := commands.NewUpdateProductCommand(
		existing.ID(), "Torta de Fresa", "Con fresas frescas",
		decimal.RequireFromString("18.50"), "", "Tortas", false)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	productRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Torta de Fresa", updated.Nombre())
	assert.True(t, updated.Precio().Equal(decimal.RequireFromString("18.50")))
	assert.False(t, updated.Disponible())
}

func TestToggleProductAvailabilityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := newTestProduct(t, "15.00")
	cmd, err := commands.NewToggleProductAvailabilityCommand(existing.ID())
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	productRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewToggleProductAvailabilityCommandHandler(factory)
	toggled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, toggled.Disponible())
}

func TestDeleteProductCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	cmd, err := commands.NewDeleteProductCommand(missingID)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Delete", mock.Anything, missingID).
		Return(errs.NewObjectNotFoundError("productId", missingID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
