package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create valid address", func(t *testing.T) {
		addr, err := kernel.NewAddress("Warehouse Road", "500", "Sao Paulo", "SP", "01000-000")

		require.NoError(t, err)
		assert.Equal(t, "Warehouse Road", addr.Street())
		assert.Equal(t, "500", addr.Number())
		assert.Equal(t, "Sao Paulo", addr.City())
		assert.Equal(t, "SP", addr.State())
		assert.Equal(t, "01000-000", addr.Zip())
		require.NoError(t, addr.Validate())
	})

	t.Run("should allow empty optional components", func(t *testing.T) {
		addr, err := kernel.NewAddress("Atlantic Avenue", "", "Rio de Janeiro", "", "")

		require.NoError(t, err)
		assert.Empty(t, addr.Number())
		assert.Empty(t, addr.State())
		require.NoError(t, addr.Validate())
	})

	t.Run("should reject empty street", func(t *testing.T) {
		_, err := kernel.NewAddress("", "1", "Sao Paulo", "SP", "01000-000")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty city", func(t *testing.T) {
		_, err := kernel.NewAddress("Warehouse Road", "500", "", "SP", "01000-000")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	t.Run("equal addresses compare equal", func(t *testing.T) {
		a, err := kernel.NewAddress("Warehouse Road", "500", "Sao Paulo", "SP", "01000-000")
		require.NoError(t, err)
		b, err := kernel.NewAddress("Warehouse Road", "500", "Sao Paulo", "SP", "01000-000")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("different cities compare not equal", func(t *testing.T) {
		a, err := kernel.NewAddress("Warehouse Road", "500", "Sao Paulo", "SP", "01000-000")
		require.NoError(t, err)
		b, err := kernel.NewAddress("Warehouse Road", "500", "Rio de Janeiro", "SP", "01000-000")
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
	})
}
