package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShipment(t *testing.T) *shipment.Shipment {
	t.Helper()

	origin, err := kernel.NewAddress("Av. Central", "100", "São Paulo", "SP", "01000-000")
	require.NoError(t, err)
	destination, err := kernel.NewAddress("Rua do Porto", "45", "Rio de Janeiro", "RJ", "20000-000")
	require.NoError(t, err)

	// 10 kg total
	line, err := shipment.NewLine("SKU1001", 10, decimal.NewFromInt(1), decimal.NewFromFloat(0.01))
	require.NoError(t, err)

	s, err := shipment.NewShipment(kernel.NewUUID(), origin, destination, []*shipment.Line{line})
	require.NoError(t, err)
	return s
}

func testCarrier(t *testing.T, id string, rate float64) *shipment.Carrier {
	t.Helper()
	c, err := shipment.NewCarrier(id, "Transporte "+id, decimal.NewFromFloat(rate))
	require.NoError(t, err)
	return c
}

func TestCarrierSelector_Select(t *testing.T) {
	selector := services.NewCarrierSelector()
	distance := decimal.NewFromInt(450)

	t.Run("picks the cheapest carrier", func(t *testing.T) {
		carriers := []*shipment.Carrier{
			testCarrier(t, "T001", 0.11),
			testCarrier(t, "T002", 0.10),
		}

		sel, err := selector.Select(testShipment(t), carriers, distance)

		require.NoError(t, err)
		assert.Equal(t, "T002", sel.Carrier.ID())
		// 450 km * 10 kg * 0.10
		assert.True(t, sel.EstimatedCost.Equal(decimal.NewFromInt(450)),
			"cost is %s", sel.EstimatedCost)
	})

	t.Run("breaks ties by carrier id ascending", func(t *testing.T) {
		carriers := []*shipment.Carrier{
			testCarrier(t, "T003", 0.10),
			testCarrier(t, "T001", 0.10),
			testCarrier(t, "T002", 0.10),
		}

		sel, err := selector.Select(testShipment(t), carriers, distance)

		require.NoError(t, err)
		assert.Equal(t, "T001", sel.Carrier.ID())
	})

	t.Run("fails when no carrier is registered", func(t *testing.T) {
		_, err := selector.Select(testShipment(t), nil, distance)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("rejects non-positive distance", func(t *testing.T) {
		carriers := []*shipment.Carrier{testCarrier(t, "T001", 0.11)}

		_, err := selector.Select(testShipment(t), carriers, decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
