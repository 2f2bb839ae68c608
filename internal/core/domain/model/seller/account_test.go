package seller_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/seller"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newTestAccount(t *testing.T) *seller.Account {
	t.Helper()
	account, err := seller.NewAccount(kernel.NewUUID(), decimal.NewFromFloat(0.10))
	require.NoError(t, err)
	return account
}

func TestNewAccount(t *testing.T) {
	t.Run("should create account with empty log", func(t *testing.T) {
		account := newTestAccount(t)

		assert.False(t, account.Held())
		assert.False(t, account.SettlementPaid())
		assert.Empty(t, account.Entries())
		assert.True(t, account.NetSettled().IsZero())
	})

	t.Run("should reject commission rate outside [0,1)", func(t *testing.T) {
		_, err := seller.NewAccount(kernel.NewUUID(), decimal.NewFromInt(1))
		require.Error(t, err)

		_, err = seller.NewAccount(kernel.NewUUID(), decimal.NewFromFloat(-0.1))
		require.Error(t, err)
	})

	t.Run("should reject zero value account", func(t *testing.T) {
		var account seller.Account
		require.ErrorIs(t, account.Validate(), seller.ErrAccountIsNotConstructed)
	})
}

func TestAccount_RecognizeDelivery(t *testing.T) {
	t.Run("should recognize delivered revenue net of commission", func(t *testing.T) {
		account := newTestAccount(t)

		entry, recognized, err := account.RecognizeDelivery(kernel.NewUUID(), kernel.NewUUID(), money(t, "1000"))

		require.NoError(t, err)
		assert.True(t, recognized)
		assert.Equal(t, seller.EntryDelivery, entry.Kind())
		assert.True(t, account.GrossRevenue().IsEqual(money(t, "1000")))
		assert.True(t, account.CommissionOwed().IsEqual(money(t, "100")))
		assert.True(t, account.NetSettled().IsEqual(money(t, "900")))
	})

	t.Run("should recognize the same order exactly once", func(t *testing.T) {
		account := newTestAccount(t)
		orderID := kernel.NewUUID()

		first, recognized, err := account.RecognizeDelivery(kernel.NewUUID(), orderID, money(t, "1000"))
		require.NoError(t, err)
		assert.True(t, recognized)

		second, recognized, err := account.RecognizeDelivery(kernel.NewUUID(), orderID, money(t, "1000"))
		require.NoError(t, err)
		assert.False(t, recognized)
		assert.True(t, first.ID().IsEqual(second.ID()))

		assert.Len(t, account.Entries(), 1)
		assert.True(t, account.NetSettled().IsEqual(money(t, "900")))
	})

	t.Run("should keep separate orders separate", func(t *testing.T) {
		account := newTestAccount(t)

		_, _, err := account.RecognizeDelivery(kernel.NewUUID(), kernel.NewUUID(), money(t, "1000"))
		require.NoError(t, err)
		_, _, err = account.RecognizeDelivery(kernel.NewUUID(), kernel.NewUUID(), money(t, "500"))
		require.NoError(t, err)

		assert.True(t, account.NetSettled().IsEqual(money(t, "1350")))
	})
}

func TestAccount_ApplyRefund(t *testing.T) {
	t.Run("should reverse revenue and commission proportionally", func(t *testing.T) {
		account := newTestAccount(t)
		orderID := kernel.NewUUID()
		_, _, err := account.RecognizeDelivery(kernel.NewUUID(), orderID, money(t, "1000"))
		require.NoError(t, err)

		_, err = account.ApplyRefund(kernel.NewUUID(), orderID, money(t, "200"))

		require.NoError(t, err)
		assert.True(t, account.GrossRevenue().IsEqual(money(t, "800")))
		assert.True(t, account.CommissionOwed().IsEqual(money(t, "80")))
		assert.True(t, account.NetSettled().IsEqual(money(t, "720")))
	})

	t.Run("full refund nets the delivery entry to zero", func(t *testing.T) {
		account := newTestAccount(t)
		orderID := kernel.NewUUID()
		_, _, err := account.RecognizeDelivery(kernel.NewUUID(), orderID, money(t, "1000"))
		require.NoError(t, err)

		_, err = account.ApplyRefund(kernel.NewUUID(), orderID, money(t, "1000"))

		require.NoError(t, err)
		assert.True(t, account.GrossRevenue().IsZero())
		assert.True(t, account.NetSettled().IsZero())
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		account := newTestAccount(t)
		_, err := account.ApplyRefund(kernel.NewUUID(), kernel.NewUUID(), kernel.ZeroMoney())
		require.Error(t, err)
	})
}

func TestAccount_HoldAndFlags(t *testing.T) {
	t.Run("hold and release", func(t *testing.T) {
		account := newTestAccount(t)

		account.Hold()
		assert.True(t, account.Held())

		account.Hold() // no-op
		assert.True(t, account.Held())

		account.Release()
		assert.False(t, account.Held())
	})

	t.Run("settlement paid flag does not touch derived figures", func(t *testing.T) {
		account := newTestAccount(t)
		_, _, err := account.RecognizeDelivery(kernel.NewUUID(), kernel.NewUUID(), money(t, "1000"))
		require.NoError(t, err)
		before := account.NetSettled()

		account.MarkSettlementPaid()

		assert.True(t, account.SettlementPaid())
		assert.True(t, account.NetSettled().IsEqual(before))
	})
}

func TestRestoreAccount(t *testing.T) {
	t.Run("should rebuild derived figures from the restored log", func(t *testing.T) {
		sellerID := kernel.NewUUID()
		orderID := kernel.NewUUID()
		delivery, err := seller.RestoreEntry(
			kernel.NewUUID(), orderID, seller.EntryDelivery,
			money(t, "1000"), money(t, "100"), time.Now().UTC())
		require.NoError(t, err)
		refund, err := seller.RestoreEntry(
			kernel.NewUUID(), orderID, seller.EntryRefund,
			money(t, "200"), money(t, "20"), time.Now().UTC())
		require.NoError(t, err)

		account, err := seller.RestoreAccount(
			sellerID, decimal.NewFromFloat(0.10), true, false,
			[]seller.Entry{delivery, refund})

		require.NoError(t, err)
		assert.True(t, account.Held())
		assert.True(t, account.NetSettled().IsEqual(money(t, "720")))
	})
}
