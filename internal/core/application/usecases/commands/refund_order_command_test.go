package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefundOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRefundOrderCommand(
		id, commands.RefundKindPartial, money(t, "200"), "damaged item", true, true)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, commands.RefundKindPartial, cmd.Kind())
	assert.True(t, cmd.Amount().IsEqual(money(t, "200")))
	assert.True(t, cmd.RestockItems())
	assert.True(t, cmd.NotifyCustomer())
}

func TestNewRefundOrderCommand_InvalidKind(t *testing.T) {
	_, err := commands.NewRefundOrderCommand(
		kernel.NewUUID(), commands.RefundKind("half"), money(t, "200"), "reason", false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRefundKindIsInvalid)
}

func TestNewRefundOrderCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewRefundOrderCommand(
		kernel.NewUUID(), commands.RefundKindFull, kernel.ZeroMoney(), "", false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReasonIsRequired)
}
