// Package commands contains the saga coordinator: business operations that
// drive the three fulfillment subsystems through multi-step workflows.
// Each saga is a strictly sequential chain of store calls; every call is one
// committed transaction in the owning subsystem, and the coordinator reacts
// to each result instead of relying on a shared transaction.
package commands

import (
	"context"

	"fulfillment/internal/core/application/stores/ledger"
	"fulfillment/internal/core/application/stores/transport"
	"fulfillment/internal/core/application/stores/warehouse"
	"fulfillment/internal/core/domain/model/stock"
)

// Store interfaces give the coordinator its three collaborators. They
// mirror the store types in stores/ledger, stores/warehouse and
// stores/transport and exist so handlers can be tested against mocks.
type (
	// LedgerStore is the ERP subsystem as the coordinator sees it.
	LedgerStore interface {
		CreatePurchaseOrder(ctx context.Context, cmd ledger.CreatePurchaseOrderCommand) (ledger.CreatePurchaseOrderResult, error)
		ConfirmReceipt(ctx context.Context, cmd ledger.ConfirmReceiptCommand) (ledger.ConfirmReceiptResult, error)
		CreateSalesOrder(ctx context.Context, cmd ledger.CreateSalesOrderCommand) (ledger.CreateSalesOrderResult, error)
		ConfirmPicking(ctx context.Context, cmd ledger.ConfirmPickingCommand) (ledger.ConfirmPickingResult, error)
		FailPicking(ctx context.Context, cmd ledger.FailPickingCommand) (ledger.FailPickingResult, error)
		RegisterFreightCost(ctx context.Context, cmd ledger.RegisterFreightCostCommand) error
		ConfirmDelivery(ctx context.Context, cmd ledger.ConfirmDeliveryCommand) (ledger.ConfirmDeliveryResult, error)
	}

	// WarehouseStore is the inventory subsystem as the coordinator sees it.
	WarehouseStore interface {
		Receive(ctx context.Context, cmd warehouse.ReceiveCommand) (warehouse.ReceiveResult, error)
		Move(ctx context.Context, cmd warehouse.MoveCommand) error
		Pick(ctx context.Context, cmd warehouse.PickCommand) error
		Item(ctx context.Context, sku string) (*stock.Item, error)
	}

	// TransportStore is the shipment planning subsystem as the coordinator
	// sees it.
	TransportStore interface {
		CreateShipment(ctx context.Context, cmd transport.CreateShipmentCommand) error
		Plan(ctx context.Context, cmd transport.PlanCommand) (transport.PlanResult, error)
		Dispatch(ctx context.Context, cmd transport.DispatchCommand) error
		Deliver(ctx context.Context, cmd transport.DeliverCommand) error
	}
)

// LineResult reports the outcome of one saga step for one line. Err is nil
// on success; multi-line saga results carry one LineResult per input line
// so the caller sees exactly which lines went through.
type LineResult struct {
	SKU string
	Err error
}
