package kernel_test

import (
	"testing"

	"mezzo/internal/core/domain/model/kernel"
	"mezzo/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts non-negative amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(50))
		require.NoError(t, err)
		assert.Equal(t, "50.00", m.String())
	})

	t.Run("accepts zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses decimal strings", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("12.50")
		require.NoError(t, err)
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("twelve")
		require.Error(t, err)
	})

	t.Run("rejects negative strings", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-3.10")
		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	fifty, _ := kernel.NewMoneyFromString("50")
	fifteen, _ := kernel.NewMoneyFromString("15")

	t.Run("Add sums amounts", func(t *testing.T) {
		assert.Equal(t, "65.00", fifty.Add(fifteen).String())
	})

	t.Run("MulQuantity scales by integer quantity", func(t *testing.T) {
		assert.Equal(t, "100.00", fifty.MulQuantity(2).String())
	})

	t.Run("line item totals stay exact", func(t *testing.T) {
		// 2 x 50 + 1 x 15 = 115, the checkout arithmetic done at order creation.
		total := fifty.MulQuantity(2).Add(fifteen.MulQuantity(1))
		expected, _ := kernel.NewMoneyFromString("115")
		assert.True(t, total.IsEqual(expected))
	})

	t.Run("ZeroMoney is additive identity", func(t *testing.T) {
		assert.True(t, fifty.Add(kernel.ZeroMoney()).IsEqual(fifty))
	})
}
