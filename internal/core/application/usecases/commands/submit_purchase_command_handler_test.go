package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/stores/ledger"
	"fulfillment/internal/core/application/stores/warehouse"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/purchaseorder"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func purchaseLines() []commands.SubmitPurchaseLine {
	return []commands.SubmitPurchaseLine{
		{SKU: "SKU1001", Qty: 100, UnitCost: decimal.NewFromInt(50), StorageLocationID: "AISLE-A-01"},
		{SKU: "SKU1002", Qty: 50, UnitCost: decimal.NewFromInt(120), StorageLocationID: "AISLE-B-01"},
	}
}

func TestSubmitPurchaseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitPurchaseCommand("OC0001", "FORN001", purchaseLines())
	require.NoError(t, err)

	ledgerStore := new(MockLedgerStore)
	warehouseStore := new(MockWarehouseStore)

	mock.InOrder(
		ledgerStore.On("CreatePurchaseOrder", ctx, mock.AnythingOfType("ledger.CreatePurchaseOrderCommand")).
			Return(ledger.CreatePurchaseOrderResult{OrderID: "OC0001", Status: purchaseorder.ReceivingPending}, nil).Once(),
		warehouseStore.On("Receive", ctx, mock.AnythingOfType("warehouse.ReceiveCommand")).
			Return(warehouse.ReceiveResult{Balance: 100}, nil).Once(),
		warehouseStore.On("Move", ctx, mock.AnythingOfType("warehouse.MoveCommand")).
			Return(nil).Once(),
		ledgerStore.On("ConfirmReceipt", ctx, mock.AnythingOfType("ledger.ConfirmReceiptCommand")).
			Return(ledger.ConfirmReceiptResult{OrderStatus: purchaseorder.PartiallyReceived, NewAverageCost: decimal.NewFromInt(50)}, nil).Once(),
		warehouseStore.On("Receive", ctx, mock.AnythingOfType("warehouse.ReceiveCommand")).
			Return(warehouse.ReceiveResult{Balance: 50}, nil).Once(),
		warehouseStore.On("Move", ctx, mock.AnythingOfType("warehouse.MoveCommand")).
			Return(nil).Once(),
		ledgerStore.On("ConfirmReceipt", ctx, mock.AnythingOfType("ledger.ConfirmReceiptCommand")).
			Return(ledger.ConfirmReceiptResult{OrderStatus: purchaseorder.Received, NewAverageCost: decimal.NewFromInt(120)}, nil).Once(),
	)

	handler := commands.NewSubmitPurchaseCommandHandler(ledgerStore, warehouseStore, "RECEIVING")
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "OC0001", result.OrderID)
	assert.Equal(t, purchaseorder.Received, result.Status)
	assert.True(t, result.AllReceived)
	require.Len(t, result.Lines, 2)
	assert.NoError(t, result.Lines[0].Err)
	assert.NoError(t, result.Lines[1].Err)
	ledgerStore.AssertExpectations(t)
	warehouseStore.AssertExpectations(t)
}

func TestSubmitPurchaseCommandHandler_Handle_LineFailureIsBestEffort(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitPurchaseCommand("OC0001", "FORN001", purchaseLines())
	require.NoError(t, err)

	ledgerStore := new(MockLedgerStore)
	warehouseStore := new(MockWarehouseStore)

	mock.InOrder(
		ledgerStore.On("CreatePurchaseOrder", ctx, mock.AnythingOfType("ledger.CreatePurchaseOrderCommand")).
			Return(ledger.CreatePurchaseOrderResult{OrderID: "OC0001", Status: purchaseorder.ReceivingPending}, nil).Once(),
		// first line dies at receiving, second line still goes through
		warehouseStore.On("Receive", ctx, mock.AnythingOfType("warehouse.ReceiveCommand")).
			Return(warehouse.ReceiveResult{}, errs.NewObjectNotFoundError("locationId", "AISLE-A-01")).Once(),
		warehouseStore.On("Receive", ctx, mock.AnythingOfType("warehouse.ReceiveCommand")).
			Return(warehouse.ReceiveResult{Balance: 50}, nil).Once(),
		warehouseStore.On("Move", ctx, mock.AnythingOfType("warehouse.MoveCommand")).
			Return(nil).Once(),
		ledgerStore.On("ConfirmReceipt", ctx, mock.AnythingOfType("ledger.ConfirmReceiptCommand")).
			Return(ledger.ConfirmReceiptResult{OrderStatus: purchaseorder.PartiallyReceived, NewAverageCost: decimal.NewFromInt(120)}, nil).Once(),
	)

	handler := commands.NewSubmitPurchaseCommandHandler(ledgerStore, warehouseStore, "RECEIVING")
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.AllReceived)
	assert.Equal(t, purchaseorder.PartiallyReceived, result.Status)
	require.Len(t, result.Lines, 2)
	assert.ErrorIs(t, result.Lines[0].Err, errs.ErrObjectNotFound)
	assert.NoError(t, result.Lines[1].Err)
	ledgerStore.AssertExpectations(t)
	warehouseStore.AssertExpectations(t)
}

func TestSubmitPurchaseCommandHandler_Handle_CreateErrorAbortsSaga(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitPurchaseCommand("OC0001", "FORN404", purchaseLines())
	require.NoError(t, err)

	ledgerStore := new(MockLedgerStore)
	warehouseStore := new(MockWarehouseStore)

	ledgerStore.On("CreatePurchaseOrder", ctx, mock.AnythingOfType("ledger.CreatePurchaseOrderCommand")).
		Return(ledger.CreatePurchaseOrderResult{}, errs.NewObjectNotFoundError("supplierId", "FORN404")).Once()

	handler := commands.NewSubmitPurchaseCommandHandler(ledgerStore, warehouseStore, "RECEIVING")
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	warehouseStore.AssertNotCalled(t, "Receive")
	ledgerStore.AssertExpectations(t)
}

func TestSubmitPurchaseCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SubmitPurchaseCommand{} // not constructed properly

	ledgerStore := new(MockLedgerStore)
	warehouseStore := new(MockWarehouseStore)

	handler := commands.NewSubmitPurchaseCommandHandler(ledgerStore, warehouseStore, "RECEIVING")
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrSubmitPurchaseCommandIsNotConstructed)
	ledgerStore.AssertNotCalled(t, "CreatePurchaseOrder")
}

func TestNewSubmitPurchaseCommand(t *testing.T) {
	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := commands.NewSubmitPurchaseCommand("OC0001", "FORN001", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject line without storage location", func(t *testing.T) {
		_, err := commands.NewSubmitPurchaseCommand("OC0001", "FORN001",
			[]commands.SubmitPurchaseLine{{SKU: "SKU1001", Qty: 1, UnitCost: decimal.NewFromInt(50)}})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
