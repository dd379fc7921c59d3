package shipment_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T, city string) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("Av. Central", "100", city, "SP", "01000-000")
	require.NoError(t, err)
	return addr
}

func testLines(t *testing.T) []*shipment.Line {
	t.Helper()
	l1, err := shipment.NewLine("SKU1001", 10,
		decimal.NewFromFloat(2.5), decimal.NewFromFloat(0.01))
	require.NoError(t, err)
	l2, err := shipment.NewLine("SKU1002", 5,
		decimal.NewFromInt(8), decimal.NewFromFloat(0.05))
	require.NoError(t, err)
	return []*shipment.Line{l1, l2}
}

func newCreatedShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(),
		testAddress(t, "São Paulo"), testAddress(t, "Rio de Janeiro"), testLines(t))
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("should create shipment in Created status", func(t *testing.T) {
		id := kernel.NewUUID()
		s, err := shipment.NewShipment(id,
			testAddress(t, "São Paulo"), testAddress(t, "Rio de Janeiro"), testLines(t))

		require.NoError(t, err)
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, shipment.Created, s.Status())
		assert.Empty(t, s.CarrierID())
		assert.True(t, s.EstimatedCost().IsZero())
		assert.Nil(t, s.DeliveredAt())
		require.NoError(t, s.Validate())
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(),
			testAddress(t, "São Paulo"), testAddress(t, "Rio de Janeiro"), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero addresses", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(),
			kernel.Address{}, testAddress(t, "Rio de Janeiro"), testLines(t))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewLine(t *testing.T) {
	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := shipment.NewLine("SKU1001", 0, decimal.NewFromInt(1), decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		_, err := shipment.NewLine("SKU1001", 1, decimal.Zero, decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipment_Totals(t *testing.T) {
	s := newCreatedShipment(t)

	// 10*2.5 + 5*8 = 65 kg
	assert.True(t, s.TotalWeight().Equal(decimal.NewFromInt(65)),
		"total weight is %s", s.TotalWeight())
	// 10*0.01 + 5*0.05 = 0.35 m3
	assert.True(t, s.TotalVolume().Equal(decimal.NewFromFloat(0.35)),
		"total volume is %s", s.TotalVolume())
}

func TestShipment_Plan(t *testing.T) {
	t.Run("binds carrier and cost", func(t *testing.T) {
		s := newCreatedShipment(t)

		err := s.Plan("T002", decimal.NewFromFloat(2925))

		require.NoError(t, err)
		assert.Equal(t, shipment.Planned, s.Status())
		assert.Equal(t, "T002", s.CarrierID())
		assert.True(t, s.EstimatedCost().Equal(decimal.NewFromFloat(2925)))
	})

	t.Run("rejects planning twice", func(t *testing.T) {
		s := newCreatedShipment(t)
		require.NoError(t, s.Plan("T002", decimal.NewFromInt(100)))

		err := s.Plan("T001", decimal.NewFromInt(200))

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, "T002", s.CarrierID())
	})

	t.Run("rejects empty carrier", func(t *testing.T) {
		s := newCreatedShipment(t)
		require.ErrorIs(t, s.Plan("", decimal.NewFromInt(100)), errs.ErrValueIsRequired)
		assert.Equal(t, shipment.Created, s.Status())
	})
}

func TestShipment_Dispatch(t *testing.T) {
	t.Run("requires Planned", func(t *testing.T) {
		s := newCreatedShipment(t)

		require.ErrorIs(t, s.Dispatch(), errs.ErrStateConflict)

		require.NoError(t, s.Plan("T002", decimal.NewFromInt(100)))
		require.NoError(t, s.Dispatch())
		assert.Equal(t, shipment.Dispatched, s.Status())
	})
}

func TestShipment_Deliver(t *testing.T) {
	t.Run("records delivery timestamp", func(t *testing.T) {
		s := newCreatedShipment(t)
		require.NoError(t, s.Plan("T002", decimal.NewFromInt(100)))
		require.NoError(t, s.Dispatch())

		at := time.Now().Add(72 * time.Hour)
		require.NoError(t, s.Deliver(at))

		assert.Equal(t, shipment.Delivered, s.Status())
		require.NotNil(t, s.DeliveredAt())
		assert.True(t, s.DeliveredAt().Equal(at))
		assert.True(t, s.Status().IsTerminal())
	})

	t.Run("requires Dispatched", func(t *testing.T) {
		s := newCreatedShipment(t)
		require.ErrorIs(t, s.Deliver(time.Now()), errs.ErrStateConflict)
	})

	t.Run("rejects zero timestamp", func(t *testing.T) {
		s := newCreatedShipment(t)
		require.NoError(t, s.Plan("T002", decimal.NewFromInt(100)))
		require.NoError(t, s.Dispatch())

		require.ErrorIs(t, s.Deliver(time.Time{}), errs.ErrValueIsRequired)
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("restores bound carrier and delivery", func(t *testing.T) {
		at := time.Now()
		s, err := shipment.RestoreShipment(kernel.NewUUID(),
			testAddress(t, "São Paulo"), testAddress(t, "Rio de Janeiro"), testLines(t),
			shipment.Delivered, "T002", decimal.NewFromInt(100), &at)

		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, s.Status())
		assert.Equal(t, "T002", s.CarrierID())
		require.NotNil(t, s.DeliveredAt())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := shipment.RestoreShipment(kernel.NewUUID(),
			testAddress(t, "São Paulo"), testAddress(t, "Rio de Janeiro"), testLines(t),
			shipment.Unknown, "", decimal.Zero, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewCarrier(t *testing.T) {
	t.Run("should create carrier", func(t *testing.T) {
		c, err := shipment.NewCarrier("T001", "Transporte Alfa", decimal.NewFromFloat(0.11))

		require.NoError(t, err)
		assert.Equal(t, "T001", c.ID())
		assert.Equal(t, "Transporte Alfa", c.Name())
		require.NoError(t, c.Validate())
	})

	t.Run("should reject non-positive rate", func(t *testing.T) {
		_, err := shipment.NewCarrier("T001", "Transporte Alfa", decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCarrier_CostFor(t *testing.T) {
	c, err := shipment.NewCarrier("T002", "Transporte Beta", decimal.NewFromFloat(0.10))
	require.NoError(t, err)

	// 450 km * 65 kg * 0.10 = 2925
	cost := c.CostFor(decimal.NewFromInt(450), decimal.NewFromInt(65))
	assert.True(t, cost.Equal(decimal.NewFromInt(2925)), "cost is %s", cost)
}

func TestStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to shipment.Status
		allowed  bool
	}{
		{shipment.Created, shipment.Planned, true},
		{shipment.Planned, shipment.Dispatched, true},
		{shipment.Dispatched, shipment.Delivered, true},
		{shipment.Created, shipment.Dispatched, false},
		{shipment.Created, shipment.Delivered, false},
		{shipment.Planned, shipment.Delivered, false},
		{shipment.Delivered, shipment.Created, false},
		{shipment.Dispatched, shipment.Planned, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)

		_, err := tc.from.TransitionTo(tc.to)
		if tc.allowed {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.ErrorIs(t, err, errs.ErrStateConflict, "%s -> %s", tc.from, tc.to)
		}
	}
}
