package order_test

import (
	"testing"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	item1, err := order.NewItem(kernel.NewUUID(), 2, money(t, "300"))
	require.NoError(t, err)
	item2, err := order.NewItem(kernel.NewUUID(), 1, money(t, "400"))
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{item1, item2},
		"12 Harbor Lane",
	)
	require.NoError(t, err)
	return o
}

func newPaidOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newTestOrder(t)
	require.NoError(t, o.MarkPaid())
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with total from line items", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.True(t, o.TotalAmount().IsEqual(money(t, "1000")))
		assert.Nil(t, o.Carrier())
		assert.Empty(t, o.Refunds())
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, "addr")
		require.Error(t, err)
	})

	t.Run("should reject empty shipping address", func(t *testing.T) {
		item, itemErr := order.NewItem(kernel.NewUUID(), 1, money(t, "10"))
		require.NoError(t, itemErr)

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, "")
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should accept constructed order", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})
}

func TestOrder_Fulfillment(t *testing.T) {
	t.Run("should walk the happy path to delivered", func(t *testing.T) {
		o := newPaidOrder(t)

		require.NoError(t, o.StartProcessing())
		assert.Equal(t, order.StatusProcessing, o.Status())

		require.NoError(t, o.Ship("DHL", "TRK-1001", "2 days"))
		assert.Equal(t, order.StatusShipped, o.Status())
		require.NotNil(t, o.Carrier())
		assert.Equal(t, "TRK-1001", o.Carrier().TrackingNumber())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("should reject processing from non-pending and keep status", func(t *testing.T) {
		o := newPaidOrder(t)
		require.NoError(t, o.StartProcessing())

		err := o.StartProcessing()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusProcessing, o.Status())
	})

	t.Run("should reject shipping without tracking number and keep status", func(t *testing.T) {
		o := newPaidOrder(t)
		require.NoError(t, o.StartProcessing())

		err := o.Ship("DHL", "", "2 days")

		require.ErrorIs(t, err, order.ErrMissingTrackingInfo)
		assert.Equal(t, order.StatusProcessing, o.Status())
		assert.Nil(t, o.Carrier())
	})

	t.Run("should reject shipping from pending", func(t *testing.T) {
		o := newPaidOrder(t)

		err := o.Ship("DHL", "TRK-1", "")

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should reject delivering twice", func(t *testing.T) {
		o := newPaidOrder(t)
		require.NoError(t, o.StartProcessing())
		require.NoError(t, o.Ship("DHL", "TRK-1", ""))
		require.NoError(t, o.Deliver())

		require.ErrorIs(t, o.Deliver(), order.ErrInvalidTransition)
	})

	t.Run("should cancel from pending and processing only", func(t *testing.T) {
		fromPending := newPaidOrder(t)
		require.NoError(t, fromPending.Cancel())
		assert.Equal(t, order.StatusCancelled, fromPending.Status())

		fromProcessing := newPaidOrder(t)
		require.NoError(t, fromProcessing.StartProcessing())
		require.NoError(t, fromProcessing.Cancel())

		shipped := newPaidOrder(t)
		require.NoError(t, shipped.StartProcessing())
		require.NoError(t, shipped.Ship("DHL", "TRK-1", ""))
		require.ErrorIs(t, shipped.Cancel(), order.ErrInvalidTransition)
		assert.Equal(t, order.StatusShipped, shipped.Status())
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("should confirm pending payment", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkPaid())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})

	t.Run("should reject double confirmation", func(t *testing.T) {
		o := newPaidOrder(t)
		require.ErrorIs(t, o.MarkPaid(), order.ErrInvalidTransition)
	})
}

func TestOrder_ApplyRefund(t *testing.T) {
	t.Run("partial refund flips payment to partially refunded", func(t *testing.T) {
		o := newPaidOrder(t)

		record, err := o.ApplyRefund(kernel.NewUUID(), money(t, "200"), "damaged item", false)

		require.NoError(t, err)
		assert.True(t, record.Amount().IsEqual(money(t, "200")))
		assert.Equal(t, order.PaymentPartiallyRefunded, o.PaymentStatus())
		assert.True(t, o.RefundedAmount().IsEqual(money(t, "200")))
	})

	t.Run("refunds accumulating to the total flip payment to refunded", func(t *testing.T) {
		o := newPaidOrder(t)

		_, err := o.ApplyRefund(kernel.NewUUID(), money(t, "600"), "first", false)
		require.NoError(t, err)
		_, err = o.ApplyRefund(kernel.NewUUID(), money(t, "400"), "second", true)
		require.NoError(t, err)

		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
		assert.True(t, o.RefundedAmount().IsEqual(o.TotalAmount()))
	})

	t.Run("should reject refund above remaining amount without mutating state", func(t *testing.T) {
		o := newPaidOrder(t)
		_, err := o.ApplyRefund(kernel.NewUUID(), money(t, "900"), "first", false)
		require.NoError(t, err)

		_, err = o.ApplyRefund(kernel.NewUUID(), money(t, "200"), "too much", false)

		require.ErrorIs(t, err, order.ErrInvalidRefundAmount)
		assert.Len(t, o.Refunds(), 1)
		assert.True(t, o.RefundedAmount().IsEqual(money(t, "900")))
	})

	t.Run("should reject zero amount", func(t *testing.T) {
		o := newPaidOrder(t)
		_, err := o.ApplyRefund(kernel.NewUUID(), kernel.ZeroMoney(), "nothing", false)
		require.ErrorIs(t, err, order.ErrInvalidRefundAmount)
	})

	t.Run("should reject refund on unpaid order", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.ApplyRefund(kernel.NewUUID(), money(t, "100"), "not paid", false)
		require.ErrorIs(t, err, order.ErrInvalidRefundAmount)
		assert.Empty(t, o.Refunds())
	})
}

func TestOrder_AttachFlag(t *testing.T) {
	t.Run("should append flag record", func(t *testing.T) {
		o := newPaidOrder(t)

		record, err := o.AttachFlag(kernel.NewUUID(), order.SeverityCritical, "chargeback risk", true)

		require.NoError(t, err)
		assert.Equal(t, order.SeverityCritical, record.Severity())
		assert.True(t, record.FreezeFunds())
		assert.Len(t, o.Flags(), 1)
	})

	t.Run("should reject unknown severity", func(t *testing.T) {
		o := newPaidOrder(t)
		_, err := o.AttachFlag(kernel.NewUUID(), order.SeverityUnknown, "bad", false)
		require.Error(t, err)
		assert.Empty(t, o.Flags())
	})
}

func TestSeverityFromString(t *testing.T) {
	for input, expected := range map[string]order.Severity{
		"low":      order.SeverityLow,
		"medium":   order.SeverityMedium,
		"high":     order.SeverityHigh,
		"critical": order.SeverityCritical,
	} {
		severity, err := order.SeverityFromString(input)
		require.NoError(t, err)
		assert.Equal(t, expected, severity)
	}

	_, err := order.SeverityFromString("catastrophic")
	require.Error(t, err)
}
