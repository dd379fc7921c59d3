package commands_test

import (
	"context"

	"fulfillment/internal/core/application/stores/ledger"
	"fulfillment/internal/core/application/stores/transport"
	"fulfillment/internal/core/application/stores/warehouse"
	"fulfillment/internal/core/domain/model/stock"

	"github.com/stretchr/testify/mock"
)

type MockLedgerStore struct{ mock.Mock }

func (m *MockLedgerStore) CreatePurchaseOrder(ctx context.Context, cmd ledger.CreatePurchaseOrderCommand) (ledger.CreatePurchaseOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(ledger.CreatePurchaseOrderResult), args.Error(1)
}

func (m *MockLedgerStore) ConfirmReceipt(ctx context.Context, cmd ledger.ConfirmReceiptCommand) (ledger.ConfirmReceiptResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(ledger.ConfirmReceiptResult), args.Error(1)
}

func (m *MockLedgerStore) CreateSalesOrder(ctx context.Context, cmd ledger.CreateSalesOrderCommand) (ledger.CreateSalesOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(ledger.CreateSalesOrderResult), args.Error(1)
}

func (m *MockLedgerStore) ConfirmPicking(ctx context.Context, cmd ledger.ConfirmPickingCommand) (ledger.ConfirmPickingResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(ledger.ConfirmPickingResult), args.Error(1)
}

func (m *MockLedgerStore) FailPicking(ctx context.Context, cmd ledger.FailPickingCommand) (ledger.FailPickingResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(ledger.FailPickingResult), args.Error(1)
}

func (m *MockLedgerStore) RegisterFreightCost(ctx context.Context, cmd ledger.RegisterFreightCostCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *MockLedgerStore) ConfirmDelivery(ctx context.Context, cmd ledger.ConfirmDeliveryCommand) (ledger.ConfirmDeliveryResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(ledger.ConfirmDeliveryResult), args.Error(1)
}

type MockWarehouseStore struct{ mock.Mock }

func (m *MockWarehouseStore) Receive(ctx context.Context, cmd warehouse.ReceiveCommand) (warehouse.ReceiveResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(warehouse.ReceiveResult), args.Error(1)
}

func (m *MockWarehouseStore) Move(ctx context.Context, cmd warehouse.MoveCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *MockWarehouseStore) Pick(ctx context.Context, cmd warehouse.PickCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *MockWarehouseStore) Item(ctx context.Context, sku string) (*stock.Item, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Item), args.Error(1)
}

type MockTransportStore struct{ mock.Mock }

func (m *MockTransportStore) CreateShipment(ctx context.Context, cmd transport.CreateShipmentCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *MockTransportStore) Plan(ctx context.Context, cmd transport.PlanCommand) (transport.PlanResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(transport.PlanResult), args.Error(1)
}

func (m *MockTransportStore) Dispatch(ctx context.Context, cmd transport.DispatchCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *MockTransportStore) Deliver(ctx context.Context, cmd transport.DeliverCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
