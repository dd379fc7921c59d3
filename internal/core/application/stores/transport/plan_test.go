package transport_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/core/application/stores/transport"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetAllInStatus(_ context.Context, _ shipment.Status) ([]*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(_ context.Context, _ *shipment.Carrier) error {
	return errors.New("not implemented in mock")
}
func (m *MockCarrierRepository) GetAll(ctx context.Context) ([]*shipment.Carrier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*shipment.Carrier), args.Error(1)
}

type MockDistanceRepository struct{ mock.Mock }

func (m *MockDistanceRepository) Add(_ context.Context, _, _ string, _ decimal.Decimal) error {
	return errors.New("not implemented in mock")
}
func (m *MockDistanceRepository) Get(ctx context.Context, originCity, destinationCity string) (decimal.Decimal, error) {
	args := m.Called(ctx, originCity, destinationCity)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockTransportUoW struct {
	shipments *MockShipmentRepository
	carriers  *MockCarrierRepository
	distances *MockDistanceRepository

	commits   int
	rollbacks int
}

func (m *MockTransportUoW) Begin(_ context.Context) error { return nil }
func (m *MockTransportUoW) Commit(_ context.Context) error {
	m.commits++
	return nil
}
func (m *MockTransportUoW) Rollback(_ context.Context) error {
	m.rollbacks++
	return nil
}
func (m *MockTransportUoW) ShipmentRepository() ports.ShipmentRepository { return m.shipments }
func (m *MockTransportUoW) CarrierRepository() ports.CarrierRepository   { return m.carriers }
func (m *MockTransportUoW) DistanceRepository() ports.DistanceRepository { return m.distances }

type MockTransportUoWFactory struct{ uow *MockTransportUoW }

func (f *MockTransportUoWFactory) Create() ports.TransportUnitOfWork { return f.uow }

func newTransportUoW() *MockTransportUoW {
	return &MockTransportUoW{
		shipments: new(MockShipmentRepository),
		carriers:  new(MockCarrierRepository),
		distances: new(MockDistanceRepository),
	}
}

// createdShipment builds a 20kg shipment from São Paulo to Rio de Janeiro.
func createdShipment(t *testing.T, id kernel.UUID) *shipment.Shipment {
	t.Helper()
	origin, err := kernel.NewAddress("Rua do Armazém Principal", "500", "São Paulo", "SP", "01000-000")
	require.NoError(t, err)
	destination, err := kernel.NewAddress("Avenida Atlântica", "1702", "Rio de Janeiro", "RJ", "22021-001")
	require.NoError(t, err)

	line1, err := shipment.NewLine("SKU1001", 10, decimal.NewFromFloat(0.5), decimal.NewFromFloat(0.002))
	require.NoError(t, err)
	line2, err := shipment.NewLine("SKU1002", 5, decimal.NewFromFloat(3.0), decimal.NewFromFloat(0.008))
	require.NoError(t, err)

	load, err := shipment.NewShipment(id, origin, destination, []*shipment.Line{line1, line2})
	require.NoError(t, err)
	return load
}

func testCarriers(t *testing.T) []*shipment.Carrier {
	t.Helper()
	expensive, err := shipment.NewCarrier("T001", "Transportadora Bandeirantes", decimal.NewFromFloat(0.11))
	require.NoError(t, err)
	cheap, err := shipment.NewCarrier("T002", "Expresso Guanabara", decimal.NewFromFloat(0.10))
	require.NoError(t, err)
	return []*shipment.Carrier{expensive, cheap}
}

func Test_Plan_SelectsCheapestCarrier(t *testing.T) {
	// Arrange
	uow := newTransportUoW()
	store := transport.NewStore(&MockTransportUoWFactory{uow: uow})

	shipmentID := kernel.NewUUID()
	load := createdShipment(t, shipmentID)

	uow.shipments.On("Get", t.Context(), shipmentID).Return(load, nil).Once()
	uow.distances.On("Get", t.Context(), "São Paulo", "Rio de Janeiro").
		Return(decimal.NewFromInt(450), nil).Once()
	uow.carriers.On("GetAll", t.Context()).Return(testCarriers(t), nil).Once()
	uow.shipments.On("Update", t.Context(), load).Return(nil).Once()

	cmd, err := transport.NewPlanCommand(shipmentID)
	require.NoError(t, err)

	// Act
	result, err := store.Plan(t.Context(), cmd)

	// Assert: 20kg over 450km at the 0.10 rate
	require.NoError(t, err)
	assert.Equal(t, "T002", result.CarrierID)
	assert.True(t, decimal.NewFromInt(900).Equal(result.EstimatedCost), "cost was %s", result.EstimatedCost)
	assert.Equal(t, shipment.Planned, load.Status())
	assert.Equal(t, 1, uow.commits)
	uow.shipments.AssertExpectations(t)
}

func Test_Plan_MissingDistance_ShipmentStaysCreated(t *testing.T) {
	// Arrange
	uow := newTransportUoW()
	store := transport.NewStore(&MockTransportUoWFactory{uow: uow})

	shipmentID := kernel.NewUUID()
	load := createdShipment(t, shipmentID)

	uow.shipments.On("Get", t.Context(), shipmentID).Return(load, nil).Once()
	uow.distances.On("Get", t.Context(), "São Paulo", "Rio de Janeiro").
		Return(decimal.Zero, errs.NewObjectNotFoundError("distance", "São Paulo -> Rio de Janeiro")).Once()

	cmd, err := transport.NewPlanCommand(shipmentID)
	require.NoError(t, err)

	// Act
	_, err = store.Plan(t.Context(), cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, shipment.Created, load.Status())
	assert.Equal(t, 0, uow.commits)
	assert.Equal(t, 1, uow.rollbacks)
	uow.shipments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.carriers.AssertNotCalled(t, "GetAll", mock.Anything)
}

func Test_Plan_NoCarriersRegistered(t *testing.T) {
	// Arrange
	uow := newTransportUoW()
	store := transport.NewStore(&MockTransportUoWFactory{uow: uow})

	shipmentID := kernel.NewUUID()
	load := createdShipment(t, shipmentID)

	uow.shipments.On("Get", t.Context(), shipmentID).Return(load, nil).Once()
	uow.distances.On("Get", t.Context(), "São Paulo", "Rio de Janeiro").
		Return(decimal.NewFromInt(450), nil).Once()
	uow.carriers.On("GetAll", t.Context()).Return([]*shipment.Carrier{}, nil).Once()

	cmd, err := transport.NewPlanCommand(shipmentID)
	require.NoError(t, err)

	// Act
	_, err = store.Plan(t.Context(), cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, shipment.Created, load.Status())
	assert.Equal(t, 0, uow.commits)
	uow.shipments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
