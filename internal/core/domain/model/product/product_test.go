package product_test

import (
	"testing"

	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/product"
	"market/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()
	price := decimal.NewFromFloat(10.00)
	cost := decimal.NewFromFloat(6.50)

	t.Run("creates available product with valid parameters", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Ceylon tea", price, cost, 25)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "Ceylon tea", p.Name())
		assert.True(t, p.Price().Equal(price))
		assert.True(t, p.PurchasePrice().Equal(cost))
		assert.Equal(t, 25, p.AvailableQuantity())
		assert.True(t, p.IsAvailable())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		p, err := product.NewProduct(validID, "", price, cost, 25)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with zero price", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Ceylon tea", decimal.Zero, cost, 25)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("fails with negative purchase price", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Ceylon tea", price, decimal.NewFromInt(-1), 25)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("fails with negative stock", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Ceylon tea", price, cost, -1)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("fails with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, "Ceylon tea", price, cost, 25)

		require.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("restores withdrawn product", func(t *testing.T) {
		p, err := product.RestoreProduct(
			kernel.NewUUID(), "Ceylon tea",
			decimal.NewFromFloat(10.00), decimal.NewFromFloat(6.50),
			0, false,
		)

		require.NoError(t, err)
		assert.False(t, p.IsAvailable())
		assert.Equal(t, 0, p.AvailableQuantity())
	})
}

func TestProduct_Deduct(t *testing.T) {
	newProduct := func(t *testing.T, stock int) *product.Product {
		t.Helper()
		p, err := product.NewProduct(
			kernel.NewUUID(), "Ceylon tea",
			decimal.NewFromFloat(10.00), decimal.NewFromFloat(6.50), stock,
		)
		require.NoError(t, err)
		return p
	}

	t.Run("deducts requested quantity", func(t *testing.T) {
		p := newProduct(t, 5)

		require.NoError(t, p.Deduct(2))
		assert.Equal(t, 3, p.AvailableQuantity())
	})

	t.Run("deducts down to zero", func(t *testing.T) {
		p := newProduct(t, 2)

		require.NoError(t, p.Deduct(2))
		assert.Equal(t, 0, p.AvailableQuantity())
	})

	t.Run("refuses more than on hand and leaves counter untouched", func(t *testing.T) {
		p := newProduct(t, 1)

		err := p.Deduct(2)

		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Equal(t, 1, p.AvailableQuantity())
	})

	t.Run("refuses withdrawn products", func(t *testing.T) {
		p, err := product.RestoreProduct(
			kernel.NewUUID(), "Ceylon tea",
			decimal.NewFromFloat(10.00), decimal.NewFromFloat(6.50),
			5, false,
		)
		require.NoError(t, err)

		require.ErrorIs(t, p.Deduct(1), product.ErrProductUnavailable)
		assert.Equal(t, 5, p.AvailableQuantity())
	})

	t.Run("refuses non-positive quantity", func(t *testing.T) {
		p := newProduct(t, 5)

		require.Error(t, p.Deduct(0))
		require.Error(t, p.Deduct(-1))
		assert.Equal(t, 5, p.AvailableQuantity())
	})
}

func TestProduct_Restock(t *testing.T) {
	t.Run("adds units back to stock", func(t *testing.T) {
		p, err := product.NewProduct(
			kernel.NewUUID(), "Ceylon tea",
			decimal.NewFromFloat(10.00), decimal.NewFromFloat(6.50), 1,
		)
		require.NoError(t, err)

		require.NoError(t, p.Restock(9))
		assert.Equal(t, 10, p.AvailableQuantity())
	})

	t.Run("refuses non-positive quantity", func(t *testing.T) {
		p, err := product.NewProduct(
			kernel.NewUUID(), "Ceylon tea",
			decimal.NewFromFloat(10.00), decimal.NewFromFloat(6.50), 1,
		)
		require.NoError(t, err)

		require.Error(t, p.Restock(0))
		assert.Equal(t, 1, p.AvailableQuantity())
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product

		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}
