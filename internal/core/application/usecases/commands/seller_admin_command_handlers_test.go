package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnfreezeSellerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	account := newSellerAccount(t, kernel.NewUUID())
	account.Hold()

	cmd, err := commands.NewUnfreezeSellerCommand(account.SellerID())
	require.NoError(t, err)

	sellerRepo := new(MockSellerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SellerRepository").Return(sellerRepo).Once(),
		sellerRepo.On("GetForUpdate", ctx, account.SellerID()).Return(account, nil).Once(),
		sellerRepo.On("Update", ctx, mock.AnythingOfType("*seller.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSellerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnfreezeSellerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, account.Held())
	sellerRepo.AssertExpectations(t)
}

func TestMarkSettlementPaidCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	account := newSellerAccount(t, kernel.NewUUID())
	_, _, err := account.RecognizeDelivery(kernel.NewUUID(), kernel.NewUUID(), money(t, "1000"))
	require.NoError(t, err)
	before := account.NetSettled()

	cmd, err := commands.NewMarkSettlementPaidCommand(account.SellerID())
	require.NoError(t, err)

	sellerRepo := new(MockSellerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SellerRepository").Return(sellerRepo).Once(),
		sellerRepo.On("GetForUpdate", ctx, account.SellerID()).Return(account, nil).Once(),
		sellerRepo.On("Update", ctx, mock.AnythingOfType("*seller.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSellerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkSettlementPaidCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, account.SettlementPaid())
	assert.True(t, account.NetSettled().IsEqual(before))
}
