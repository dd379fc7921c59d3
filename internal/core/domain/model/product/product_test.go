package product_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewProduct("SKU1001", "Alpha Component",
		decimal.NewFromInt(150), decimal.NewFromInt(50))
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("should create valid product", func(t *testing.T) {
		p := newTestProduct(t)

		assert.Equal(t, "SKU1001", p.SKU())
		assert.Equal(t, "Alpha Component", p.Name())
		assert.True(t, p.SalePrice().Equal(decimal.NewFromInt(150)))
		assert.True(t, p.AverageCost().Equal(decimal.NewFromInt(50)))
		assert.Zero(t, p.OnHand())
		assert.Zero(t, p.Reserved())
		require.NoError(t, p.Validate())
	})

	t.Run("should reject empty sku", func(t *testing.T) {
		_, err := product.NewProduct("", "Alpha", decimal.NewFromInt(1), decimal.NewFromInt(1))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := product.NewProduct("SKU1001", "Alpha", decimal.NewFromInt(-1), decimal.NewFromInt(1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product
		require.Error(t, p.Validate())
	})
}

func TestProduct_ApplyReceipt(t *testing.T) {
	t.Run("first receipt sets average cost to unit cost", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.ApplyReceipt(100, decimal.NewFromInt(50)))

		assert.Equal(t, 100, p.OnHand())
		assert.True(t, p.AverageCost().Equal(decimal.NewFromInt(50)),
			"expected 50, got %s", p.AverageCost())
	})

	t.Run("average cost is weighted by quantities", func(t *testing.T) {
		p := newTestProduct(t)
		require.NoError(t, p.ApplyReceipt(100, decimal.NewFromInt(50)))

		// 100 @ 50 + 100 @ 70 -> 60
		require.NoError(t, p.ApplyReceipt(100, decimal.NewFromInt(70)))

		assert.Equal(t, 200, p.OnHand())
		assert.True(t, p.AverageCost().Equal(decimal.NewFromInt(60)),
			"expected 60, got %s", p.AverageCost())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		p := newTestProduct(t)
		require.ErrorIs(t, p.ApplyReceipt(0, decimal.NewFromInt(10)), errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative cost", func(t *testing.T) {
		p := newTestProduct(t)
		require.ErrorIs(t, p.ApplyReceipt(1, decimal.NewFromInt(-1)), errs.ErrValueIsInvalid)
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("reserving reduces availability", func(t *testing.T) {
		p := newTestProduct(t)
		require.NoError(t, p.ApplyReceipt(100, decimal.NewFromInt(50)))

		require.NoError(t, p.Reserve(10))

		assert.Equal(t, 10, p.Reserved())
		assert.Equal(t, 90, p.Available())
		assert.Equal(t, 100, p.OnHand())
	})

	t.Run("cannot reserve more than available", func(t *testing.T) {
		p := newTestProduct(t)
		require.NoError(t, p.ApplyReceipt(10, decimal.NewFromInt(50)))
		require.NoError(t, p.Reserve(8))

		err := p.Reserve(3)

		require.ErrorIs(t, err, errs.ErrInsufficientResource)
		assert.Equal(t, 8, p.Reserved())
	})
}

func TestProduct_Release(t *testing.T) {
	t.Run("release returns stock to the available pool", func(t *testing.T) {
		p := newTestProduct(t)
		require.NoError(t, p.ApplyReceipt(10, decimal.NewFromInt(50)))
		require.NoError(t, p.Reserve(8))

		require.NoError(t, p.Release(8))

		assert.Zero(t, p.Reserved())
		assert.Equal(t, 10, p.Available())
	})

	t.Run("cannot release more than reserved", func(t *testing.T) {
		p := newTestProduct(t)
		require.NoError(t, p.ApplyReceipt(10, decimal.NewFromInt(50)))
		require.NoError(t, p.Reserve(2))

		require.ErrorIs(t, p.Release(3), errs.ErrValueIsInvalid)
	})
}

func TestProduct_ConsumeReserved(t *testing.T) {
	t.Run("consumption removes stock from the projection", func(t *testing.T) {
		p := newTestProduct(t)
		require.NoError(t, p.ApplyReceipt(100, decimal.NewFromInt(50)))
		require.NoError(t, p.Reserve(10))

		require.NoError(t, p.ConsumeReserved(10))

		assert.Equal(t, 90, p.OnHand())
		assert.Zero(t, p.Reserved())
	})

	t.Run("cannot consume more than reserved", func(t *testing.T) {
		p := newTestProduct(t)
		require.NoError(t, p.ApplyReceipt(100, decimal.NewFromInt(50)))
		require.NoError(t, p.Reserve(5))

		require.ErrorIs(t, p.ConsumeReserved(6), errs.ErrValueIsInvalid)
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("restores stock projection", func(t *testing.T) {
		p, err := product.RestoreProduct("SKU1001", "Alpha Component",
			decimal.NewFromInt(150), decimal.NewFromInt(50), 100, 10)

		require.NoError(t, err)
		assert.Equal(t, 100, p.OnHand())
		assert.Equal(t, 10, p.Reserved())
		assert.Equal(t, 90, p.Available())
	})

	t.Run("rejects reserved above on-hand", func(t *testing.T) {
		_, err := product.RestoreProduct("SKU1001", "Alpha Component",
			decimal.NewFromInt(150), decimal.NewFromInt(50), 5, 6)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
