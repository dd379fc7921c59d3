package commands

import (
	"context"

	"fulfillment/internal/core/application/stores/ledger"
	"fulfillment/internal/core/application/stores/warehouse"
	"fulfillment/internal/core/domain/model/purchaseorder"
)

// SubmitPurchaseResult is the procurement saga's outcome. Lines carries one
// entry per input line; a line's Err reports which step rejected it.
// AllReceived is true when every line made it through receiving, put-away
// and confirmation.
type SubmitPurchaseResult struct {
	OrderID     string
	Status      purchaseorder.Status
	Lines       []LineResult
	AllReceived bool
}

// SubmitPurchaseCommandHandler drives the procurement saga.
//
// Per line the sequence is: receive into the receiving area, move to the
// line's storage location, confirm the receipt on the ledger. The saga is
// best effort per line: a failed line is recorded and the remaining lines
// are still attempted. Each step commits atomically in its own subsystem,
// so a failed line leaves no half-applied state and the same submission can
// be re-run to finish a partially received order.
type SubmitPurchaseCommandHandler struct {
	ledgerStore         LedgerStore
	warehouseStore      WarehouseStore
	receivingLocationID string
}

// NewSubmitPurchaseCommandHandler creates a handler for the procurement
// saga. receivingLocationID is the dock location every inbound line lands in
// first.
func NewSubmitPurchaseCommandHandler(
	ledgerStore LedgerStore,
	warehouseStore WarehouseStore,
	receivingLocationID string,
) SubmitPurchaseCommandHandler {
	return SubmitPurchaseCommandHandler{
		ledgerStore:         ledgerStore,
		warehouseStore:      warehouseStore,
		receivingLocationID: receivingLocationID,
	}
}

// Handle runs the procurement saga. A failure creating the purchase order
// aborts the saga; line-level failures are reported in the result and never
// returned as the handler's error.
func (h *SubmitPurchaseCommandHandler) Handle(ctx context.Context, cmd SubmitPurchaseCommand) (SubmitPurchaseResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitPurchaseResult{}, err
	}

	createLines := make([]ledger.PurchaseLine, 0, len(cmd.Lines()))
	for _, l := range cmd.Lines() {
		createLines = append(createLines, ledger.PurchaseLine{
			SKU:      l.SKU,
			Qty:      l.Qty,
			UnitCost: l.UnitCost,
		})
	}

	createCmd, err := ledger.NewCreatePurchaseOrderCommand(cmd.OrderID(), cmd.SupplierID(), createLines)
	if err != nil {
		return SubmitPurchaseResult{}, err
	}

	created, err := h.ledgerStore.CreatePurchaseOrder(ctx, createCmd)
	if err != nil {
		return SubmitPurchaseResult{}, err
	}

	result := SubmitPurchaseResult{
		OrderID:     created.OrderID,
		Status:      created.Status,
		Lines:       make([]LineResult, 0, len(cmd.Lines())),
		AllReceived: true,
	}

	for _, l := range cmd.Lines() {
		lineErr := h.handleLine(ctx, cmd.OrderID(), l, &result)
		if lineErr != nil {
			result.AllReceived = false
		}
		result.Lines = append(result.Lines, LineResult{SKU: l.SKU, Err: lineErr})
	}

	return result, nil
}

func (h *SubmitPurchaseCommandHandler) handleLine(
	ctx context.Context,
	orderID string,
	l SubmitPurchaseLine,
	result *SubmitPurchaseResult,
) error {
	receiveCmd, err := warehouse.NewReceiveCommand(l.SKU, l.Qty, h.receivingLocationID)
	if err != nil {
		return err
	}

	if _, err = h.warehouseStore.Receive(ctx, receiveCmd); err != nil {
		return err
	}

	moveCmd, err := warehouse.NewMoveCommand(l.SKU, l.Qty, h.receivingLocationID, l.StorageLocationID)
	if err != nil {
		return err
	}

	if err = h.warehouseStore.Move(ctx, moveCmd); err != nil {
		return err
	}

	confirmCmd, err := ledger.NewConfirmReceiptCommand(orderID, l.SKU, l.Qty, l.UnitCost)
	if err != nil {
		return err
	}

	confirmed, err := h.ledgerStore.ConfirmReceipt(ctx, confirmCmd)
	if err != nil {
		return err
	}

	result.Status = confirmed.OrderStatus
	return nil
}
