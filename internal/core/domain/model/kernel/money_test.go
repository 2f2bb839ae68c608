package kernel_test

import (
	"testing"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(1000))

		require.NoError(t, err)
		assert.Equal(t, "1000", m.String())
	})

	t.Run("should allow zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("199.90")

		require.NoError(t, err)
		assert.Equal(t, "199.9", m.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("not-a-number")
		require.Error(t, err)
	})

	t.Run("should reject negative strings", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-10")
		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	hundred, _ := kernel.NewMoneyFromString("100")
	forty, _ := kernel.NewMoneyFromString("40")

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, "140", hundred.Add(forty).String())
	})

	t.Run("sub", func(t *testing.T) {
		result, err := hundred.Sub(forty)
		require.NoError(t, err)
		assert.Equal(t, "60", result.String())
	})

	t.Run("sub below zero fails", func(t *testing.T) {
		_, err := forty.Sub(hundred)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("mul rate", func(t *testing.T) {
		rate := decimal.NewFromFloat(0.10)
		assert.Equal(t, "10", hundred.MulRate(rate).String())
	})

	t.Run("mul int", func(t *testing.T) {
		assert.Equal(t, "300", hundred.MulInt(3).String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	a, _ := kernel.NewMoneyFromString("10")
	b, _ := kernel.NewMoneyFromString("20")
	c, _ := kernel.NewMoneyFromString("10.00")

	assert.True(t, a.LessThan(b))
	assert.True(t, b.GreaterThan(a))
	assert.True(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(b))
	assert.True(t, a.IsPositive())
	assert.False(t, kernel.ZeroMoney().IsPositive())
}
