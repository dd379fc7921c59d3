package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/application/stores/ledger"
	"fulfillment/internal/core/application/stores/transport"
	"fulfillment/internal/core/application/stores/warehouse"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"

	"github.com/shopspring/decimal"
)

// SubmitSaleResult is the order-to-cash saga's outcome. PickResults carries
// one entry per input line. On a picking failure the order ends PickFailed
// and the post-ship fields stay zero; on full success Revenue and COGS hold
// the settled amounts.
type SubmitSaleResult struct {
	OrderID     string
	Status      salesorder.Status
	ShipmentID  *kernel.UUID
	PickResults []LineResult
	Revenue     decimal.Decimal
	COGS        decimal.Decimal
	DeliveredAt *time.Time
}

// SubmitSaleCommandHandler drives the order-to-cash saga.
//
// The sequence is: create the sales order (stock and credit reserved), pick
// every line into the picking area, stage, confirm picking (the order ships
// and a shipment id is minted), then create, plan, dispatch and deliver the
// shipment, posting freight along the way and settling revenue, COGS and
// credit at delivery.
//
// Compensation policy: picking is all or nothing. When any line fails to
// pick, lines that did pick are moved back from the picking area to their
// storage locations before the order is failed, so no stock stays allocated
// in the picking area for an aborted order. Each compensating move commits
// in the warehouse on its own, exactly like the move it undoes.
type SubmitSaleCommandHandler struct {
	ledgerStore       LedgerStore
	warehouseStore    WarehouseStore
	transportStore    TransportStore
	pickLocationID    string
	stagingLocationID string
	warehouseAddress  kernel.Address
	transitTime       time.Duration
}

// NewSubmitSaleCommandHandler creates a handler for the order-to-cash saga.
// warehouseAddress is the shipment origin; transitTime is the simulated time
// between dispatch and delivery.
func NewSubmitSaleCommandHandler(
	ledgerStore LedgerStore,
	warehouseStore WarehouseStore,
	transportStore TransportStore,
	pickLocationID, stagingLocationID string,
	warehouseAddress kernel.Address,
	transitTime time.Duration,
) SubmitSaleCommandHandler {
	return SubmitSaleCommandHandler{
		ledgerStore:       ledgerStore,
		warehouseStore:    warehouseStore,
		transportStore:    transportStore,
		pickLocationID:    pickLocationID,
		stagingLocationID: stagingLocationID,
		warehouseAddress:  warehouseAddress,
		transitTime:       transitTime,
	}
}

// Handle runs the order-to-cash saga. A picking failure is a business
// outcome, reported through the result's status, not as the handler's
// error. A failure after the order has shipped halts the saga and returns
// the step's error; the order stays Shipped with no automatic retry.
func (h *SubmitSaleCommandHandler) Handle(ctx context.Context, cmd SubmitSaleCommand) (SubmitSaleResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitSaleResult{}, err
	}

	created, err := h.createOrder(ctx, cmd)
	if err != nil {
		return SubmitSaleResult{}, err
	}

	result := SubmitSaleResult{
		OrderID: created.OrderID,
		Status:  created.Status,
	}

	picked, allPicked := h.pickLines(ctx, cmd, &result)
	if !allPicked {
		if err = h.compensatePicks(ctx, cmd, picked, &result); err != nil {
			return result, err
		}
		return result, nil
	}

	if err = h.stageAndConfirm(ctx, cmd, &result); err != nil {
		return result, err
	}

	if err = h.shipAndSettle(ctx, cmd, created, &result); err != nil {
		return result, err
	}

	return result, nil
}

func (h *SubmitSaleCommandHandler) createOrder(ctx context.Context, cmd SubmitSaleCommand) (ledger.CreateSalesOrderResult, error) {
	lines := make([]ledger.SaleLine, 0, len(cmd.Lines()))
	for _, l := range cmd.Lines() {
		lines = append(lines, ledger.SaleLine{SKU: l.SKU, Qty: l.Qty})
	}

	createCmd, err := ledger.NewCreateSalesOrderCommand(cmd.OrderID(), cmd.CustomerID(), lines)
	if err != nil {
		return ledger.CreateSalesOrderResult{}, err
	}

	return h.ledgerStore.CreateSalesOrder(ctx, createCmd)
}

// pickLines attempts every line and returns which ones made it into the
// picking area. Remaining lines are still attempted after a failure so the
// result reports the complete picture.
func (h *SubmitSaleCommandHandler) pickLines(ctx context.Context, cmd SubmitSaleCommand, result *SubmitSaleResult) ([]SubmitSaleLine, bool) {
	var picked []SubmitSaleLine
	allPicked := true

	for _, l := range cmd.Lines() {
		err := h.pickLine(ctx, l)
		if err != nil {
			allPicked = false
		} else {
			picked = append(picked, l)
		}
		result.PickResults = append(result.PickResults, LineResult{SKU: l.SKU, Err: err})
	}

	return picked, allPicked
}

func (h *SubmitSaleCommandHandler) pickLine(ctx context.Context, l SubmitSaleLine) error {
	pickCmd, err := warehouse.NewPickCommand(l.SKU, l.Qty, l.FromLocationID, h.pickLocationID)
	if err != nil {
		return err
	}
	return h.warehouseStore.Pick(ctx, pickCmd)
}

// compensatePicks returns successfully picked lines to their storage
// locations, then fails the order on the ledger, releasing its stock and
// credit reservations.
func (h *SubmitSaleCommandHandler) compensatePicks(
	ctx context.Context,
	cmd SubmitSaleCommand,
	picked []SubmitSaleLine,
	result *SubmitSaleResult,
) error {
	for _, l := range picked {
		moveCmd, err := warehouse.NewMoveCommand(l.SKU, l.Qty, h.pickLocationID, l.FromLocationID)
		if err != nil {
			return err
		}
		if err = h.warehouseStore.Move(ctx, moveCmd); err != nil {
			return err
		}
	}

	failCmd, err := ledger.NewFailPickingCommand(cmd.OrderID())
	if err != nil {
		return err
	}

	failed, err := h.ledgerStore.FailPicking(ctx, failCmd)
	if err != nil {
		return err
	}

	result.Status = failed.Status
	return nil
}

// stageAndConfirm moves every picked line into staging and confirms the
// full pick set on the ledger, shipping the order.
func (h *SubmitSaleCommandHandler) stageAndConfirm(ctx context.Context, cmd SubmitSaleCommand, result *SubmitSaleResult) error {
	for _, l := range cmd.Lines() {
		moveCmd, err := warehouse.NewMoveCommand(l.SKU, l.Qty, h.pickLocationID, h.stagingLocationID)
		if err != nil {
			return err
		}
		if err = h.warehouseStore.Move(ctx, moveCmd); err != nil {
			return err
		}
	}

	confirmations := make([]salesorder.PickConfirmation, 0, len(cmd.Lines()))
	for _, l := range cmd.Lines() {
		confirmations = append(confirmations, salesorder.PickConfirmation{SKU: l.SKU, Qty: l.Qty})
	}

	confirmCmd, err := ledger.NewConfirmPickingCommand(cmd.OrderID(), confirmations)
	if err != nil {
		return err
	}

	confirmed, err := h.ledgerStore.ConfirmPicking(ctx, confirmCmd)
	if err != nil {
		return err
	}

	result.Status = confirmed.Status
	result.ShipmentID = confirmed.ShipmentID
	return nil
}

// shipAndSettle runs the post-ship chain: create and plan the shipment,
// post its freight cost, dispatch, deliver and settle the order.
func (h *SubmitSaleCommandHandler) shipAndSettle(
	ctx context.Context,
	cmd SubmitSaleCommand,
	created ledger.CreateSalesOrderResult,
	result *SubmitSaleResult,
) error {
	shipmentID := *result.ShipmentID

	loadLines := make([]transport.ShipmentLine, 0, len(cmd.Lines()))
	for _, l := range cmd.Lines() {
		item, err := h.warehouseStore.Item(ctx, l.SKU)
		if err != nil {
			return err
		}
		loadLines = append(loadLines, transport.ShipmentLine{
			SKU:        l.SKU,
			Qty:        l.Qty,
			UnitWeight: item.UnitWeight(),
			UnitVolume: item.UnitVolume(),
		})
	}

	createCmd, err := transport.NewCreateShipmentCommand(
		shipmentID, h.warehouseAddress, created.CustomerAddress, loadLines)
	if err != nil {
		return err
	}
	if err = h.transportStore.CreateShipment(ctx, createCmd); err != nil {
		return err
	}

	planCmd, err := transport.NewPlanCommand(shipmentID)
	if err != nil {
		return err
	}
	planned, err := h.transportStore.Plan(ctx, planCmd)
	if err != nil {
		return err
	}

	freightCmd, err := ledger.NewRegisterFreightCostCommand(shipmentID, planned.EstimatedCost)
	if err != nil {
		return err
	}
	if err = h.ledgerStore.RegisterFreightCost(ctx, freightCmd); err != nil {
		return err
	}

	dispatchCmd, err := transport.NewDispatchCommand(shipmentID)
	if err != nil {
		return err
	}
	if err = h.transportStore.Dispatch(ctx, dispatchCmd); err != nil {
		return err
	}

	deliveredAt := time.Now().Add(h.transitTime)
	deliverCmd, err := transport.NewDeliverCommand(shipmentID, deliveredAt)
	if err != nil {
		return err
	}
	if err = h.transportStore.Deliver(ctx, deliverCmd); err != nil {
		return err
	}

	settleCmd, err := ledger.NewConfirmDeliveryCommand(shipmentID, deliveredAt)
	if err != nil {
		return err
	}
	settled, err := h.ledgerStore.ConfirmDelivery(ctx, settleCmd)
	if err != nil {
		return err
	}

	result.Status = settled.Status
	result.Revenue = settled.Revenue
	result.COGS = settled.COGS
	result.DeliveredAt = &deliveredAt
	return nil
}
