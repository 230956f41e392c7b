package queries_test

import (
	"testing"

	"market/internal/core/application/usecases/queries"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChat(t *testing.T) kernel.ChatID {
	t.Helper()

	chat, err := kernel.NewChatID(100500)
	require.NoError(t, err)
	return chat
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("creates query", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(orderID)

		require.NoError(t, err)
		assert.True(t, query.OrderID().IsEqual(orderID))
		assert.NoError(t, query.Validate())
	})

	t.Run("rejects empty order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("default constructor fails validation", func(t *testing.T) {
		var query queries.GetOrderQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewGetOrdersByStatusQuery(t *testing.T) {
	t.Run("creates query", func(t *testing.T) {
		query, err := queries.NewGetOrdersByStatusQuery(order.Placed)

		require.NoError(t, err)
		assert.Equal(t, order.Placed, query.Status())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)

		require.Error(t, err)
	})
}

func TestNewGetBuyerOrdersQuery(t *testing.T) {
	t.Run("creates query", func(t *testing.T) {
		buyer := testChat(t)

		query, err := queries.NewGetBuyerOrdersQuery(buyer)

		require.NoError(t, err)
		assert.True(t, query.Buyer().IsEqual(buyer))
	})

	t.Run("rejects empty buyer", func(t *testing.T) {
		_, err := queries.NewGetBuyerOrdersQuery(kernel.ChatID{})

		require.Error(t, err)
	})
}

func TestNewGetCartQuery(t *testing.T) {
	t.Run("creates query", func(t *testing.T) {
		buyer := testChat(t)

		query, err := queries.NewGetCartQuery(buyer)

		require.NoError(t, err)
		assert.True(t, query.Buyer().IsEqual(buyer))
	})

	t.Run("rejects empty buyer", func(t *testing.T) {
		_, err := queries.NewGetCartQuery(kernel.ChatID{})

		require.Error(t, err)
	})
}

func TestGetCartQueryResponse_Subtotal(t *testing.T) {
	line := queries.GetCartQueryResponse{
		Quantity:  3,
		UnitPrice: decimal.NewFromFloat(10.50),
	}

	assert.True(t, line.Subtotal().Equal(decimal.NewFromFloat(31.50)))
}
