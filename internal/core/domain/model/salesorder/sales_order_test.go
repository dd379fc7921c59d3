package salesorder_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLines(t *testing.T) []*salesorder.Line {
	t.Helper()
	l1, err := salesorder.NewLine("SKU1001", 10, decimal.NewFromInt(150), decimal.NewFromInt(50))
	require.NoError(t, err)
	l2, err := salesorder.NewLine("SKU1002", 5, decimal.NewFromInt(400), decimal.NewFromInt(120))
	require.NoError(t, err)
	return []*salesorder.Line{l1, l2}
}

func newReleasedOrder(t *testing.T) *salesorder.SalesOrder {
	t.Helper()
	so, err := salesorder.NewSalesOrder("OV2001", "CLI001", testLines(t))
	require.NoError(t, err)
	require.NoError(t, so.ReleaseToWarehouse())
	return so
}

func fullPick() []salesorder.PickConfirmation {
	return []salesorder.PickConfirmation{
		{SKU: "SKU1001", Qty: 10},
		{SKU: "SKU1002", Qty: 5},
	}
}

func TestNewSalesOrder(t *testing.T) {
	t.Run("should create order in Created status", func(t *testing.T) {
		so, err := salesorder.NewSalesOrder("OV2001", "CLI001", testLines(t))

		require.NoError(t, err)
		assert.Equal(t, "OV2001", so.ID())
		assert.Equal(t, "CLI001", so.CustomerID())
		assert.Equal(t, salesorder.Created, so.Status())
		assert.Nil(t, so.ShipmentID())
		assert.Nil(t, so.DeliveredAt())
		require.NoError(t, so.Validate())
	})

	t.Run("total value sums line values", func(t *testing.T) {
		so, err := salesorder.NewSalesOrder("OV2001", "CLI001", testLines(t))
		require.NoError(t, err)

		// 10*150 + 5*400 = 3500
		assert.True(t, so.TotalValue().Equal(decimal.NewFromInt(3500)),
			"expected 3500, got %s", so.TotalValue())
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := salesorder.NewSalesOrder("OV2001", "CLI001", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject duplicate sku lines", func(t *testing.T) {
		l1, err := salesorder.NewLine("SKU1001", 1, decimal.NewFromInt(10), decimal.NewFromInt(5))
		require.NoError(t, err)
		l2, err := salesorder.NewLine("SKU1001", 2, decimal.NewFromInt(10), decimal.NewFromInt(5))
		require.NoError(t, err)

		_, err = salesorder.NewSalesOrder("OV2001", "CLI001", []*salesorder.Line{l1, l2})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSalesOrder_ConfirmPicking(t *testing.T) {
	t.Run("full pick ships the order and binds a shipment", func(t *testing.T) {
		so := newReleasedOrder(t)
		shipmentID := kernel.NewUUID()

		require.NoError(t, so.ConfirmPicking(fullPick(), shipmentID))

		assert.Equal(t, salesorder.Shipped, so.Status())
		require.NotNil(t, so.ShipmentID())
		assert.True(t, so.ShipmentID().IsEqual(shipmentID))
	})

	t.Run("partial pick accumulates without shipping", func(t *testing.T) {
		so := newReleasedOrder(t)

		require.NoError(t, so.ConfirmPicking([]salesorder.PickConfirmation{
			{SKU: "SKU1001", Qty: 4},
		}, kernel.NewUUID()))

		assert.Equal(t, salesorder.ReleasedToWarehouse, so.Status())
		assert.Nil(t, so.ShipmentID())
		line, err := so.Line("SKU1001")
		require.NoError(t, err)
		assert.Equal(t, 4, line.Picked())
	})

	t.Run("pick beyond sold quantity is rejected before mutation", func(t *testing.T) {
		so := newReleasedOrder(t)

		err := so.ConfirmPicking([]salesorder.PickConfirmation{
			{SKU: "SKU1001", Qty: 6},
			{SKU: "SKU1002", Qty: 6}, // exceeds the 5 sold
		}, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrStateConflict)
		// first confirmation must not have been applied
		line, lineErr := so.Line("SKU1001")
		require.NoError(t, lineErr)
		assert.Zero(t, line.Picked())
	})

	t.Run("repeated sku in one set cannot exceed sold quantity", func(t *testing.T) {
		so := newReleasedOrder(t)

		err := so.ConfirmPicking([]salesorder.PickConfirmation{
			{SKU: "SKU1001", Qty: 6},
			{SKU: "SKU1001", Qty: 6}, // together they exceed the 10 sold
		}, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrStateConflict)
		line, lineErr := so.Line("SKU1001")
		require.NoError(t, lineErr)
		assert.Zero(t, line.Picked())
	})

	t.Run("repeated sku in one set accumulates within sold quantity", func(t *testing.T) {
		so := newReleasedOrder(t)

		require.NoError(t, so.ConfirmPicking([]salesorder.PickConfirmation{
			{SKU: "SKU1001", Qty: 4},
			{SKU: "SKU1001", Qty: 6},
		}, kernel.NewUUID()))

		line, err := so.Line("SKU1001")
		require.NoError(t, err)
		assert.Equal(t, 10, line.Picked())
	})

	t.Run("unknown sku is rejected", func(t *testing.T) {
		so := newReleasedOrder(t)

		err := so.ConfirmPicking([]salesorder.PickConfirmation{
			{SKU: "SKU9999", Qty: 1},
		}, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("picking before release is rejected", func(t *testing.T) {
		so, err := salesorder.NewSalesOrder("OV2001", "CLI001", testLines(t))
		require.NoError(t, err)

		require.ErrorIs(t, so.ConfirmPicking(fullPick(), kernel.NewUUID()), errs.ErrStateConflict)
	})

	t.Run("picking after shipping is rejected", func(t *testing.T) {
		so := newReleasedOrder(t)
		require.NoError(t, so.ConfirmPicking(fullPick(), kernel.NewUUID()))

		require.ErrorIs(t, so.ConfirmPicking(fullPick(), kernel.NewUUID()), errs.ErrStateConflict)
	})
}

func TestSalesOrder_FailPicking(t *testing.T) {
	t.Run("released order can fail picking", func(t *testing.T) {
		so := newReleasedOrder(t)

		require.NoError(t, so.FailPicking())

		assert.Equal(t, salesorder.PickFailed, so.Status())
		assert.True(t, so.Status().IsTerminal())
	})

	t.Run("shipped order cannot fail picking", func(t *testing.T) {
		so := newReleasedOrder(t)
		require.NoError(t, so.ConfirmPicking(fullPick(), kernel.NewUUID()))

		require.ErrorIs(t, so.FailPicking(), errs.ErrStateConflict)
	})
}

func TestSalesOrder_Deliver(t *testing.T) {
	t.Run("shipped order can be delivered", func(t *testing.T) {
		so := newReleasedOrder(t)
		require.NoError(t, so.ConfirmPicking(fullPick(), kernel.NewUUID()))
		at := time.Now()

		require.NoError(t, so.Deliver(at))

		assert.Equal(t, salesorder.Delivered, so.Status())
		require.NotNil(t, so.DeliveredAt())
		assert.True(t, so.DeliveredAt().Equal(at))
	})

	t.Run("released order cannot be delivered", func(t *testing.T) {
		so := newReleasedOrder(t)

		require.ErrorIs(t, so.Deliver(time.Now()), errs.ErrStateConflict)
	})

	t.Run("zero timestamp is rejected", func(t *testing.T) {
		so := newReleasedOrder(t)
		require.NoError(t, so.ConfirmPicking(fullPick(), kernel.NewUUID()))

		require.ErrorIs(t, so.Deliver(time.Time{}), errs.ErrValueIsRequired)
	})
}

func TestStatus_TransitionTable(t *testing.T) {
	t.Run("listed transitions are allowed", func(t *testing.T) {
		assert.True(t, salesorder.Created.CanTransitionTo(salesorder.ReleasedToWarehouse))
		assert.True(t, salesorder.ReleasedToWarehouse.CanTransitionTo(salesorder.Shipped))
		assert.True(t, salesorder.ReleasedToWarehouse.CanTransitionTo(salesorder.PickFailed))
		assert.True(t, salesorder.Shipped.CanTransitionTo(salesorder.Delivered))
	})

	t.Run("unlisted transitions are rejected", func(t *testing.T) {
		assert.False(t, salesorder.Created.CanTransitionTo(salesorder.Shipped))
		assert.False(t, salesorder.Delivered.CanTransitionTo(salesorder.Shipped))
		assert.False(t, salesorder.PickFailed.CanTransitionTo(salesorder.ReleasedToWarehouse))
	})

	t.Run("Delivered and PickFailed are terminal", func(t *testing.T) {
		assert.True(t, salesorder.Delivered.IsTerminal())
		assert.True(t, salesorder.PickFailed.IsTerminal())
		assert.False(t, salesorder.Shipped.IsTerminal())
	})
}

func TestRestoreSalesOrder(t *testing.T) {
	t.Run("restores shipment binding", func(t *testing.T) {
		shipmentID := kernel.NewUUID()
		l, err := salesorder.RestoreLine("SKU1001", 10,
			decimal.NewFromInt(150), decimal.NewFromInt(50), 10)
		require.NoError(t, err)

		so, err := salesorder.RestoreSalesOrder("OV2001", "CLI001",
			[]*salesorder.Line{l}, salesorder.Shipped, &shipmentID, nil)

		require.NoError(t, err)
		assert.Equal(t, salesorder.Shipped, so.Status())
		require.NotNil(t, so.ShipmentID())
		assert.True(t, so.ShipmentID().IsEqual(shipmentID))
	})

	t.Run("rejects picked above sold", func(t *testing.T) {
		_, err := salesorder.RestoreLine("SKU1001", 10,
			decimal.NewFromInt(150), decimal.NewFromInt(50), 11)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
