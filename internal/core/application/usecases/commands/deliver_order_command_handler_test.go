package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := newShippedOrder(t)
	account := newSellerAccount(t, testOrder.SellerID())
	cmd, err := commands.NewDeliverOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	sellerRepo := new(MockSellerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("SellerRepository").Return(sellerRepo).Once(),
		sellerRepo.On("GetForUpdate", ctx, testOrder.SellerID()).Return(account, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		sellerRepo.On("Update", ctx, mock.AnythingOfType("*seller.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderSellerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, testOrder.Status())
	assert.True(t, account.NetSettled().IsEqual(money(t, "900")))
	orderRepo.AssertExpectations(t)
	sellerRepo.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_AlreadyRecognized(t *testing.T) {
	ctx := t.Context()
	testOrder := newShippedOrder(t)
	account := newSellerAccount(t, testOrder.SellerID())

	// the carrier already confirmed this order once
	_, recognized, err := account.RecognizeDelivery(kernel.NewUUID(), testOrder.ID(), testOrder.TotalAmount())
	require.NoError(t, err)
	require.True(t, recognized)

	cmd, err := commands.NewDeliverOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	sellerRepo := new(MockSellerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("SellerRepository").Return(sellerRepo).Once(),
		sellerRepo.On("GetForUpdate", ctx, testOrder.SellerID()).Return(account, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderSellerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, account.Entries(), 1)
	assert.True(t, account.NetSettled().IsEqual(money(t, "900")))
	sellerRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestDeliverOrderCommandHandler_Handle_NotShipped(t *testing.T) {
	ctx := t.Context()
	testOrder := newProcessingPaidOrder(t)
	cmd, err := commands.NewDeliverOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderSellerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.StatusProcessing, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}
