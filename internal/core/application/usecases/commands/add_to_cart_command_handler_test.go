package commands_test

import (
	"testing"

	"market/internal/core/application/usecases/commands"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddToCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyer := chatID(t, 100500)
	p := testProduct(t, 10.00, 5)
	cmd, err := commands.NewAddToCartCommand(buyer, p.ID())
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Increment", ctx, buyer, p.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
}

func TestAddToCartCommandHandler_Handle_WithdrawnProduct(t *testing.T) {
	ctx := t.Context()
	buyer := chatID(t, 100500)
	withdrawn, err := product.RestoreProduct(
		kernel.NewUUID(), "Pizza", decimal.NewFromFloat(10.00), decimal.NewFromFloat(5.00), 5, false)
	require.NoError(t, err)
	cmd, err := commands.NewAddToCartCommand(buyer, withdrawn.ID())
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, withdrawn.ID()).Return(withdrawn, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, product.ErrProductUnavailable)
	cartRepo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
