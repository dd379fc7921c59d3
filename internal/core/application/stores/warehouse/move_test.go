package warehouse_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/core/application/stores/warehouse"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(_ context.Context, _ *stock.Item) error {
	return errors.New("not implemented in mock")
}
func (m *MockItemRepository) Get(ctx context.Context, sku string) (*stock.Item, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Item), args.Error(1)
}
func (m *MockItemRepository) GetAll(_ context.Context) ([]*stock.Item, error) {
	return nil, errors.New("not implemented in mock")
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(_ context.Context, _ *stock.Location) error {
	return errors.New("not implemented in mock")
}
func (m *MockLocationRepository) Update(ctx context.Context, l *stock.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLocationRepository) Get(ctx context.Context, id string) (*stock.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Location), args.Error(1)
}
func (m *MockLocationRepository) GetAll(_ context.Context) ([]*stock.Location, error) {
	return nil, errors.New("not implemented in mock")
}

type MockWarehouseUoW struct {
	items     *MockItemRepository
	locations *MockLocationRepository

	commits   int
	rollbacks int
}

func (m *MockWarehouseUoW) Begin(_ context.Context) error { return nil }
func (m *MockWarehouseUoW) Commit(_ context.Context) error {
	m.commits++
	return nil
}
func (m *MockWarehouseUoW) Rollback(_ context.Context) error {
	m.rollbacks++
	return nil
}
func (m *MockWarehouseUoW) ItemRepository() ports.ItemRepository         { return m.items }
func (m *MockWarehouseUoW) LocationRepository() ports.LocationRepository { return m.locations }

type MockWarehouseUoWFactory struct{ uow *MockWarehouseUoW }

func (f *MockWarehouseUoWFactory) Create() ports.WarehouseUnitOfWork { return f.uow }

func newWarehouseUoW() *MockWarehouseUoW {
	return &MockWarehouseUoW{
		items:     new(MockItemRepository),
		locations: new(MockLocationRepository),
	}
}

func locationWith(t *testing.T, id string, balances map[string]int) *stock.Location {
	t.Helper()
	loc, err := stock.RestoreLocation(id, balances)
	require.NoError(t, err)
	return loc
}

func Test_Move_TransfersBalanceBetweenLocations(t *testing.T) {
	// Arrange
	uow := newWarehouseUoW()
	store := warehouse.NewStore(&MockWarehouseUoWFactory{uow: uow})

	from := locationWith(t, "RECEIVING", map[string]int{"SKU1001": 20})
	to := locationWith(t, "AISLE-A-01", map[string]int{})

	uow.locations.On("Get", t.Context(), "RECEIVING").Return(from, nil).Once()
	uow.locations.On("Get", t.Context(), "AISLE-A-01").Return(to, nil).Once()
	uow.locations.On("Update", t.Context(), from).Return(nil).Once()
	uow.locations.On("Update", t.Context(), to).Return(nil).Once()

	cmd, err := warehouse.NewMoveCommand("SKU1001", 20, "RECEIVING", "AISLE-A-01")
	require.NoError(t, err)

	// Act
	err = store.Move(t.Context(), cmd)

	// Assert: the full balance left the source and arrived at the target
	require.NoError(t, err)
	assert.Equal(t, 0, from.Balance("SKU1001"))
	assert.Equal(t, 20, to.Balance("SKU1001"))
	assert.Equal(t, 1, uow.commits)
	uow.locations.AssertExpectations(t)
}

func Test_Move_InsufficientBalance_NothingChanges(t *testing.T) {
	// Arrange
	uow := newWarehouseUoW()
	store := warehouse.NewStore(&MockWarehouseUoWFactory{uow: uow})

	from := locationWith(t, "AISLE-A-01", map[string]int{"SKU1001": 3})
	to := locationWith(t, "PICKING", map[string]int{})

	uow.locations.On("Get", t.Context(), "AISLE-A-01").Return(from, nil).Once()
	uow.locations.On("Get", t.Context(), "PICKING").Return(to, nil).Once()

	cmd, err := warehouse.NewMoveCommand("SKU1001", 10, "AISLE-A-01", "PICKING")
	require.NoError(t, err)

	// Act
	err = store.Move(t.Context(), cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientResource)
	assert.Equal(t, 3, from.Balance("SKU1001"))
	assert.Equal(t, 0, to.Balance("SKU1001"))
	assert.Equal(t, 0, uow.commits)
	assert.Equal(t, 1, uow.rollbacks)
	uow.locations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func Test_Move_UnknownLocation(t *testing.T) {
	// Arrange
	uow := newWarehouseUoW()
	store := warehouse.NewStore(&MockWarehouseUoWFactory{uow: uow})

	// Locations are fetched in lexicographic order; AISLE-X-99 sorts after
	// AISLE-A-01 so the source is read first.
	from := locationWith(t, "AISLE-A-01", map[string]int{"SKU1001": 20})
	uow.locations.On("Get", t.Context(), "AISLE-A-01").Return(from, nil).Once()
	uow.locations.On("Get", t.Context(), "AISLE-X-99").
		Return(nil, errs.NewObjectNotFoundError("locationId", "AISLE-X-99")).Once()

	cmd, err := warehouse.NewMoveCommand("SKU1001", 5, "AISLE-A-01", "AISLE-X-99")
	require.NoError(t, err)

	// Act
	err = store.Move(t.Context(), cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, 20, from.Balance("SKU1001"))
	uow.locations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
