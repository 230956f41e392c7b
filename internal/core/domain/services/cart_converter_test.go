package services_test

import (
	"testing"

	"market/internal/core/domain/model/cart"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/product"
	"market/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuyer(t *testing.T) kernel.ChatID {
	t.Helper()

	buyer, err := kernel.NewChatID(100500)
	require.NoError(t, err)
	return buyer
}

func newProduct(t *testing.T, price float64, stock int) *product.Product {
	t.Helper()

	p, err := product.NewProduct(
		kernel.NewUUID(), "Pizza", decimal.NewFromFloat(price), decimal.NewFromFloat(price/2), stock)
	require.NoError(t, err)
	return p
}

func newLine(t *testing.T, buyer kernel.ChatID, productID kernel.UUID, quantity int) *cart.Line {
	t.Helper()

	line, err := cart.RestoreLine(buyer, productID, quantity)
	require.NoError(t, err)
	return line
}

func TestCartConverter_Convert(t *testing.T) {
	converter := services.NewCartConverter()

	t.Run("empty cart is rejected", func(t *testing.T) {
		_, err := converter.Convert(nil, nil)

		require.ErrorIs(t, err, services.ErrEmptyCart)
	})

	t.Run("all lines in stock", func(t *testing.T) {
		buyer := testBuyer(t)
		productA := newProduct(t, 10.00, 5)
		productB := newProduct(t, 5.00, 3)
		lines := []*cart.Line{
			newLine(t, buyer, productA.ID(), 2),
			newLine(t, buyer, productB.ID(), 1),
		}
		products := map[kernel.UUID]*product.Product{
			productA.ID(): productA,
			productB.ID(): productB,
		}

		conversion, err := converter.Convert(lines, products)

		require.NoError(t, err)
		assert.True(t, conversion.FullySatisfied)
		assert.Empty(t, conversion.RejectedProductIDs)
		assert.True(t, conversion.TotalPrice.Equal(decimal.NewFromFloat(25.00)))
		require.Len(t, conversion.Items, 2)
		assert.Len(t, conversion.ConsumedLines, 2)
		assert.Equal(t, 3, productA.AvailableQuantity())
		assert.Equal(t, 2, productB.AvailableQuantity())
	})

	t.Run("out of stock line stays in cart", func(t *testing.T) {
		buyer := testBuyer(t)
		productA := newProduct(t, 10.00, 5)
		productB := newProduct(t, 5.00, 0)
		lineA := newLine(t, buyer, productA.ID(), 2)
		lineB := newLine(t, buyer, productB.ID(), 1)
		products := map[kernel.UUID]*product.Product{
			productA.ID(): productA,
			productB.ID(): productB,
		}

		conversion, err := converter.Convert([]*cart.Line{lineA, lineB}, products)

		require.NoError(t, err)
		assert.False(t, conversion.FullySatisfied)
		require.Len(t, conversion.RejectedProductIDs, 1)
		assert.True(t, conversion.RejectedProductIDs[0].IsEqual(productB.ID()))
		require.Len(t, conversion.Items, 1)
		assert.True(t, conversion.Items[0].ProductID().IsEqual(productA.ID()))
		require.Len(t, conversion.ConsumedLines, 1)
		assert.Same(t, lineA, conversion.ConsumedLines[0])

		// The total still prices the rejected line.
		assert.True(t, conversion.TotalPrice.Equal(decimal.NewFromFloat(25.00)))
		assert.Equal(t, 3, productA.AvailableQuantity())
		assert.Equal(t, 0, productB.AvailableQuantity())
	})

	t.Run("partial stock rejects whole line", func(t *testing.T) {
		buyer := testBuyer(t)
		p := newProduct(t, 10.00, 1)
		line := newLine(t, buyer, p.ID(), 2)

		_, err := converter.Convert(
			[]*cart.Line{line}, map[kernel.UUID]*product.Product{p.ID(): p})

		require.ErrorIs(t, err, services.ErrAllLinesRejected)
		assert.Equal(t, 1, p.AvailableQuantity())
	})

	t.Run("withdrawn product is rejected", func(t *testing.T) {
		buyer := testBuyer(t)
		available := newProduct(t, 10.00, 5)
		withdrawn, err := product.RestoreProduct(
			kernel.NewUUID(), "Pizza", decimal.NewFromFloat(5.00), decimal.NewFromFloat(2.50), 10, false)
		require.NoError(t, err)
		lines := []*cart.Line{
			newLine(t, buyer, available.ID(), 1),
			newLine(t, buyer, withdrawn.ID(), 1),
		}
		products := map[kernel.UUID]*product.Product{
			available.ID(): available,
			withdrawn.ID(): withdrawn,
		}

		conversion, err := converter.Convert(lines, products)

		require.NoError(t, err)
		assert.False(t, conversion.FullySatisfied)
		require.Len(t, conversion.RejectedProductIDs, 1)
		assert.True(t, conversion.RejectedProductIDs[0].IsEqual(withdrawn.ID()))
		assert.Equal(t, 10, withdrawn.AvailableQuantity())
	})

	t.Run("no satisfiable line fails the conversion", func(t *testing.T) {
		buyer := testBuyer(t)
		p := newProduct(t, 10.00, 0)
		line := newLine(t, buyer, p.ID(), 1)

		_, err := converter.Convert(
			[]*cart.Line{line}, map[kernel.UUID]*product.Product{p.ID(): p})

		require.ErrorIs(t, err, services.ErrAllLinesRejected)
	})

	t.Run("missing product fails the conversion", func(t *testing.T) {
		buyer := testBuyer(t)
		line := newLine(t, buyer, kernel.NewUUID(), 1)

		_, err := converter.Convert([]*cart.Line{line}, map[kernel.UUID]*product.Product{})

		require.Error(t, err)
	})
}
