package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/withdrawal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkWithdrawalProcessedCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	request := pendingWithdrawal(t, kernel.NewUUID())
	require.NoError(t, request.Approve())

	cmd, err := commands.NewMarkWithdrawalProcessedCommand(request.ID())
	require.NoError(t, err)

	withdrawalRepo := new(MockWithdrawalRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WithdrawalRepository").Return(withdrawalRepo).Once(),
		withdrawalRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		withdrawalRepo.On("Update", ctx, mock.AnythingOfType("*withdrawal.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWithdrawalUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkWithdrawalProcessedCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, withdrawal.StatusProcessed, request.Status())
	require.NotNil(t, request.ProcessedAt())
}

func TestMarkWithdrawalProcessedCommandHandler_Handle_NotApproved(t *testing.T) {
	ctx := t.Context()
	request := pendingWithdrawal(t, kernel.NewUUID())

	cmd, err := commands.NewMarkWithdrawalProcessedCommand(request.ID())
	require.NoError(t, err)

	withdrawalRepo := new(MockWithdrawalRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WithdrawalRepository").Return(withdrawalRepo).Once(),
		withdrawalRepo.On("Get", ctx, request.ID()).Return(request, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWithdrawalUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkWithdrawalProcessedCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, withdrawal.ErrInvalidTransition)
	withdrawalRepo.AssertNotCalled(t, "Update")
}
