package cart_test

import (
	"testing"

	"market/internal/core/domain/model/cart"
	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBuyer(t *testing.T) kernel.ChatID {
	t.Helper()
	buyer, err := kernel.NewChatID(784523911)
	require.NoError(t, err)
	return buyer
}

func TestNewLine(t *testing.T) {
	t.Run("first add creates a line with quantity 1", func(t *testing.T) {
		buyer := validBuyer(t)
		productID := kernel.NewUUID()

		line, err := cart.NewLine(buyer, productID)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.Buyer().IsEqual(buyer))
		assert.True(t, line.ProductID().IsEqual(productID))
		assert.Equal(t, 1, line.Quantity())
	})

	t.Run("fails with invalid buyer", func(t *testing.T) {
		var invalidBuyer kernel.ChatID

		line, err := cart.NewLine(invalidBuyer, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, line)
	})

	t.Run("fails with invalid product id", func(t *testing.T) {
		var invalidProduct kernel.UUID

		line, err := cart.NewLine(validBuyer(t), invalidProduct)

		require.Error(t, err)
		assert.Nil(t, line)
	})
}

func TestRestoreLine(t *testing.T) {
	t.Run("restores arbitrary quantity", func(t *testing.T) {
		line, err := cart.RestoreLine(validBuyer(t), kernel.NewUUID(), 7)

		require.NoError(t, err)
		assert.Equal(t, 7, line.Quantity())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		line, err := cart.RestoreLine(validBuyer(t), kernel.NewUUID(), 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, line)
	})
}

func TestLine_IncrementAndReduce(t *testing.T) {
	t.Run("increment counts repeated adds", func(t *testing.T) {
		line, err := cart.NewLine(validBuyer(t), kernel.NewUUID())
		require.NoError(t, err)

		line.Increment()
		line.Increment()

		assert.Equal(t, 3, line.Quantity())
	})

	t.Run("reduce decrements while more than one unit remains", func(t *testing.T) {
		line, err := cart.RestoreLine(validBuyer(t), kernel.NewUUID(), 2)
		require.NoError(t, err)

		assert.True(t, line.Reduce())
		assert.Equal(t, 1, line.Quantity())
	})

	t.Run("reduce at one unit signals removal", func(t *testing.T) {
		line, err := cart.NewLine(validBuyer(t), kernel.NewUUID())
		require.NoError(t, err)

		assert.False(t, line.Reduce())
		assert.Equal(t, 1, line.Quantity())
	})
}

func TestLine_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var line cart.Line

		require.ErrorIs(t, line.Validate(), cart.ErrLineIsNotConstructed)
	})
}
