package deliverer_test

import (
	"testing"

	"market/internal/core/domain/model/deliverer"
	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChat(t *testing.T) kernel.ChatID {
	t.Helper()

	chat, err := kernel.NewChatID(784523911)
	require.NoError(t, err)
	return chat
}

func TestNewDeliverer(t *testing.T) {
	t.Run("creates active deliverer", func(t *testing.T) {
		id := kernel.NewUUID()
		chat := testChat(t)

		d, err := deliverer.NewDeliverer(id, chat, "Alice", "+15550101")

		require.NoError(t, err)
		assert.True(t, d.ID().IsEqual(id))
		assert.True(t, d.Chat().IsEqual(chat))
		assert.Equal(t, "Alice", d.Name())
		assert.Equal(t, "+15550101", d.Phone())
		assert.True(t, d.IsActive())
		assert.True(t, d.RatingSummary().IsZero())
		assert.NoError(t, d.Validate())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := deliverer.NewDeliverer(kernel.NewUUID(), testChat(t), "", "+15550101")

		require.ErrorIs(t, err, deliverer.ErrNameIsRequired)
	})

	t.Run("rejects empty phone", func(t *testing.T) {
		_, err := deliverer.NewDeliverer(kernel.NewUUID(), testChat(t), "Alice", "")

		require.ErrorIs(t, err, deliverer.ErrPhoneIsRequired)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := deliverer.NewDeliverer(kernel.UUID{}, testChat(t), "Alice", "+15550101")

		require.Error(t, err)
	})

	t.Run("rejects empty chat", func(t *testing.T) {
		_, err := deliverer.NewDeliverer(kernel.NewUUID(), kernel.ChatID{}, "Alice", "+15550101")

		require.Error(t, err)
	})

	t.Run("default constructor fails validation", func(t *testing.T) {
		var d deliverer.Deliverer

		require.ErrorIs(t, d.Validate(), deliverer.ErrDelivererIsNotConstructed)
	})

	t.Run("nil deliverer fails validation", func(t *testing.T) {
		var d *deliverer.Deliverer

		require.ErrorIs(t, d.Validate(), deliverer.ErrDelivererIsNotConstructed)
	})
}

func TestRestoreDeliverer(t *testing.T) {
	t.Run("restores inactive deliverer with rating", func(t *testing.T) {
		rating := decimal.NewFromFloat(4.5)

		d, err := deliverer.RestoreDeliverer(
			kernel.NewUUID(), testChat(t), "Bob", "+15550102", false, rating)

		require.NoError(t, err)
		assert.False(t, d.IsActive())
		assert.True(t, d.RatingSummary().Equal(rating))
	})

	t.Run("rejects out of range rating", func(t *testing.T) {
		_, err := deliverer.RestoreDeliverer(
			kernel.NewUUID(), testChat(t), "Bob", "+15550102", true, decimal.NewFromInt(6))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestDeliverer_SetActive(t *testing.T) {
	d, err := deliverer.NewDeliverer(kernel.NewUUID(), testChat(t), "Alice", "+15550101")
	require.NoError(t, err)

	d.SetActive(false)
	assert.False(t, d.IsActive())

	d.SetActive(true)
	assert.True(t, d.IsActive())
}

func TestDeliverer_UpdateRatingSummary(t *testing.T) {
	t.Run("stores mean within range", func(t *testing.T) {
		d, err := deliverer.NewDeliverer(kernel.NewUUID(), testChat(t), "Alice", "+15550101")
		require.NoError(t, err)

		err = d.UpdateRatingSummary(decimal.NewFromFloat(3.75))

		require.NoError(t, err)
		assert.True(t, d.RatingSummary().Equal(decimal.NewFromFloat(3.75)))
	})

	t.Run("accepts bounds", func(t *testing.T) {
		d, err := deliverer.NewDeliverer(kernel.NewUUID(), testChat(t), "Alice", "+15550101")
		require.NoError(t, err)

		require.NoError(t, d.UpdateRatingSummary(decimal.Zero))
		require.NoError(t, d.UpdateRatingSummary(decimal.NewFromInt(5)))
	})

	t.Run("rejects out of range", func(t *testing.T) {
		d, err := deliverer.NewDeliverer(kernel.NewUUID(), testChat(t), "Alice", "+15550101")
		require.NoError(t, err)

		require.Error(t, d.UpdateRatingSummary(decimal.NewFromFloat(5.01)))
		require.Error(t, d.UpdateRatingSummary(decimal.NewFromInt(-1)))
		assert.True(t, d.RatingSummary().IsZero())
	})
}
