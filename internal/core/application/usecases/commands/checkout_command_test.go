package commands_test

import (
	"testing"

	"market/internal/core/application/usecases/commands"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand(t *testing.T) {
	t.Run("creates command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		buyer := chatID(t, 100500)

		cmd, err := commands.NewCheckoutCommand(orderID, buyer, "5 Nassef st.", "+201234567890")

		require.NoError(t, err)
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.Buyer().IsEqual(buyer))
		assert.Equal(t, "5 Nassef st.", cmd.DeliveryAddress())
		assert.Equal(t, "+201234567890", cmd.ContactPhone())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("allows empty phone", func(t *testing.T) {
		cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), chatID(t, 100500), "5 Nassef st.", "")

		require.NoError(t, err)
		assert.Empty(t, cmd.ContactPhone())
	})

	t.Run("rejects empty address", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), chatID(t, 100500), "", "")

		require.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
	})

	t.Run("rejects empty buyer", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), kernel.ChatID{}, "5 Nassef st.", "")

		require.Error(t, err)
	})

	t.Run("default constructor fails validation", func(t *testing.T) {
		var cmd commands.CheckoutCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCheckoutCommandIsNotConstructed)
	})
}

func TestNewAdvanceOrderStatusCommand(t *testing.T) {
	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderStatusCommand(
			kernel.NewUUID(), commands.ActorRole("buyer"), chatID(t, 100500), order.InProgress)

		require.Error(t, err)
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderStatusCommand(
			kernel.NewUUID(), commands.RoleAdmin, chatID(t, 100500), order.Unknown)

		require.Error(t, err)
	})
}
