package commands_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/masterdata"
	"fulfillment/internal/core/application/stores/ledger"
	"fulfillment/internal/core/application/stores/transport"
	"fulfillment/internal/core/application/stores/warehouse"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/purchaseorder"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SagaIntegrationTestSuite runs both sagas end to end against a real
// PostgreSQL database: master data is seeded, the procurement saga stocks
// the warehouse, and the order-to-cash saga sells, ships and settles.
type SagaIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	ledgerFactory    ports.LedgerUnitOfWorkFactory
	transportFactory ports.TransportUnitOfWorkFactory

	warehouseStore  warehouse.Store
	purchaseHandler commands.SubmitPurchaseCommandHandler
	saleHandler     commands.SubmitSaleCommandHandler
	loader          *masterdata.Loader
}

func (suite *SagaIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = postgres_adapter.Migrate(db)
	suite.Require().NoError(err)

	ledgerFactory := postgres_adapter.NewGormLedgerUnitOfWorkFactory(db)
	warehouseFactory := postgres_adapter.NewGormWarehouseUnitOfWorkFactory(db)
	transportFactory := postgres_adapter.NewGormTransportUnitOfWorkFactory(db)
	suite.ledgerFactory = ledgerFactory
	suite.transportFactory = transportFactory

	ledgerStore := ledger.NewStore(ledgerFactory)
	suite.warehouseStore = warehouse.NewStore(warehouseFactory)
	transportStore := transport.NewStore(transportFactory)

	warehouseAddress, err := kernel.NewAddress("Rua do Armazém Principal", "500", "São Paulo", "SP", "01000-000")
	suite.Require().NoError(err)

	suite.purchaseHandler = commands.NewSubmitPurchaseCommandHandler(
		ledgerStore, suite.warehouseStore, "RECEIVING")
	suite.saleHandler = commands.NewSubmitSaleCommandHandler(
		ledgerStore, suite.warehouseStore, transportStore,
		"PICKING", "STAGING", warehouseAddress, 72*time.Hour)

	suite.loader, err = masterdata.NewLoader(ledgerFactory, warehouseFactory, transportFactory)
	suite.Require().NoError(err)
}

// SetupTest resets the database and reseeds master data so every saga run
// starts from the same catalog, partners, locations and carriers.
func (suite *SagaIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		products, partners, purchase_orders, purchase_order_lines,
		sales_orders, sales_order_lines, journal_entries,
		items, locations, location_balances,
		shipments, shipment_lines, carriers, distances`).Error
	suite.Require().NoError(err)

	err = suite.loader.Load(context.Background(), fixtureDataset())
	suite.Require().NoError(err)
}

func (suite *SagaIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// fixtureDataset mirrors the demo master data: two products, one customer
// in Rio, one supplier in São Paulo, the warehouse topology and two
// carriers on the São Paulo - Rio lane.
func fixtureDataset() masterdata.Dataset {
	return masterdata.Dataset{
		Products: []masterdata.ProductSpec{
			{SKU: "SKU1001", Name: "Fone de Ouvido Bluetooth",
				SalePrice: decimal.NewFromInt(150), AverageCost: decimal.NewFromInt(50)},
			{SKU: "SKU1002", Name: "Teclado Mecânico",
				SalePrice: decimal.NewFromInt(400), AverageCost: decimal.NewFromInt(120)},
		},
		Customers: []masterdata.CustomerSpec{
			{ID: "CLI001", Name: "Loja Carioca de Eletrônicos", TaxID: "12.345.678/0001-90",
				Address: masterdata.AddressSpec{
					Street: "Avenida Atlântica", Number: "1702",
					City: "Rio de Janeiro", State: "RJ", Zip: "22021-001",
				},
				CreditLimit: decimal.NewFromInt(20000)},
		},
		Suppliers: []masterdata.SupplierSpec{
			{ID: "FORN001", Name: "Importadora Paulista de Eletrônicos", TaxID: "98.765.432/0001-10",
				Address: masterdata.AddressSpec{
					Street: "Rua dos Importadores", Number: "88",
					City: "São Paulo", State: "SP", Zip: "03000-000",
				},
				LeadTimeDays: 5},
		},
		Items: []masterdata.ItemSpec{
			{SKU: "SKU1001", Name: "Fone de Ouvido Bluetooth", Description: "Fone sem fio",
				UnitWeight: decimal.NewFromFloat(0.5), UnitVolume: decimal.NewFromFloat(0.002)},
			{SKU: "SKU1002", Name: "Teclado Mecânico", Description: "Teclado ABNT2",
				UnitWeight: decimal.NewFromFloat(3.0), UnitVolume: decimal.NewFromFloat(0.008)},
		},
		Locations: []string{"RECEIVING", "AISLE-A-01", "AISLE-B-01", "PICKING", "STAGING"},
		Carriers: []masterdata.CarrierSpec{
			{ID: "T001", Name: "Transportadora Bandeirantes", RatePerKmKg: decimal.NewFromFloat(0.11)},
			{ID: "T002", Name: "Expresso Guanabara", RatePerKmKg: decimal.NewFromFloat(0.10)},
		},
		Distances: []masterdata.DistanceSpec{
			{OriginCity: "São Paulo", DestinationCity: "Rio de Janeiro", Km: decimal.NewFromInt(450)},
			{OriginCity: "Rio de Janeiro", DestinationCity: "São Paulo", Km: decimal.NewFromInt(450)},
		},
	}
}

// runProcurement stocks the warehouse: 20 units of SKU1001 into aisle A and
// 5 units of SKU1002 into aisle B, all received against purchase order PC-001.
func (suite *SagaIntegrationTestSuite) runProcurement(ctx context.Context) commands.SubmitPurchaseResult {
	cmd, err := commands.NewSubmitPurchaseCommand("PC-001", "FORN001", []commands.SubmitPurchaseLine{
		{SKU: "SKU1001", Qty: 20, UnitCost: decimal.NewFromInt(50), StorageLocationID: "AISLE-A-01"},
		{SKU: "SKU1002", Qty: 5, UnitCost: decimal.NewFromInt(120), StorageLocationID: "AISLE-B-01"},
	})
	suite.Require().NoError(err)

	result, err := suite.purchaseHandler.Handle(ctx, cmd)
	suite.Require().NoError(err)
	return result
}

func (suite *SagaIntegrationTestSuite) TestProcurementSaga_FullReceipt() {
	ctx := context.Background()

	result := suite.runProcurement(ctx)

	suite.Equal("PC-001", result.OrderID)
	suite.Equal(purchaseorder.Received, result.Status)
	suite.True(result.AllReceived)
	suite.Require().Len(result.Lines, 2)
	suite.NoError(result.Lines[0].Err)
	suite.NoError(result.Lines[1].Err)

	// Warehouse balances landed in the storage locations
	snapshot, err := suite.warehouseStore.Snapshot(ctx)
	suite.Require().NoError(err)
	suite.Equal(20, snapshot.Locations["AISLE-A-01"]["SKU1001"])
	suite.Equal(5, snapshot.Locations["AISLE-B-01"]["SKU1002"])
	suite.Equal(0, snapshot.Locations["RECEIVING"]["SKU1001"])

	// Ledger stock projection and average cost follow the receipt
	uow := suite.ledgerFactory.Create()
	product1, err := uow.ProductRepository().Get(ctx, "SKU1001")
	suite.Require().NoError(err)
	suite.Equal(20, product1.OnHand())
	suite.True(decimal.NewFromInt(50).Equal(product1.AverageCost()))

	order, err := uow.PurchaseOrderRepository().Get(ctx, "PC-001")
	suite.Require().NoError(err)
	suite.Equal(purchaseorder.Received, order.Status())
}

func (suite *SagaIntegrationTestSuite) TestProcurementSaga_UnknownStorageLocation_FailsLineOnly() {
	ctx := context.Background()

	cmd, err := commands.NewSubmitPurchaseCommand("PC-002", "FORN001", []commands.SubmitPurchaseLine{
		{SKU: "SKU1001", Qty: 20, UnitCost: decimal.NewFromInt(50), StorageLocationID: "AISLE-A-01"},
		{SKU: "SKU1002", Qty: 5, UnitCost: decimal.NewFromInt(120), StorageLocationID: "AISLE-X-99"},
	})
	suite.Require().NoError(err)

	result, err := suite.purchaseHandler.Handle(ctx, cmd)
	suite.Require().NoError(err)

	suite.False(result.AllReceived)
	suite.Equal(purchaseorder.PartiallyReceived, result.Status)
	suite.NoError(result.Lines[0].Err)
	suite.Require().Error(result.Lines[1].Err)
	suite.ErrorIs(result.Lines[1].Err, errs.ErrObjectNotFound)

	// The good line is fully processed; the failed line's stock stays on the
	// receiving dock and its receipt is never confirmed on the ledger.
	snapshot, err := suite.warehouseStore.Snapshot(ctx)
	suite.Require().NoError(err)
	suite.Equal(20, snapshot.Locations["AISLE-A-01"]["SKU1001"])
	suite.Equal(5, snapshot.Locations["RECEIVING"]["SKU1002"])

	uow := suite.ledgerFactory.Create()
	product2, err := uow.ProductRepository().Get(ctx, "SKU1002")
	suite.Require().NoError(err)
	suite.Equal(0, product2.OnHand())
}

func (suite *SagaIntegrationTestSuite) TestOrderToCashSaga_HappyPath() {
	ctx := context.Background()
	suite.runProcurement(ctx)

	cmd, err := commands.NewSubmitSaleCommand("PED-001", "CLI001", []commands.SubmitSaleLine{
		{SKU: "SKU1001", Qty: 10, FromLocationID: "AISLE-A-01"},
		{SKU: "SKU1002", Qty: 5, FromLocationID: "AISLE-B-01"},
	})
	suite.Require().NoError(err)

	result, err := suite.saleHandler.Handle(ctx, cmd)
	suite.Require().NoError(err)

	suite.Equal("PED-001", result.OrderID)
	suite.Equal(salesorder.Delivered, result.Status)
	suite.Require().NotNil(result.ShipmentID)
	suite.Require().NotNil(result.DeliveredAt)

	// Revenue 10x150 + 5x400, COGS 10x50 + 5x120
	suite.True(decimal.NewFromInt(3500).Equal(result.Revenue), "revenue was %s", result.Revenue)
	suite.True(decimal.NewFromInt(1100).Equal(result.COGS), "COGS was %s", result.COGS)

	uow := suite.ledgerFactory.Create()

	// Journal carries revenue, COGS and freight. The cheapest carrier wins:
	// 20kg over 450km at T002's 0.10 rate is 900.
	entries, err := uow.JournalRepository().GetByOrder(ctx, "PED-001")
	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)

	amounts := map[journal.Kind]decimal.Decimal{}
	for _, e := range entries {
		amounts[e.Kind()] = e.Amount()
	}
	suite.True(decimal.NewFromInt(900).Equal(amounts[journal.KindFreight]), "freight was %s", amounts[journal.KindFreight])
	suite.True(decimal.NewFromInt(3500).Equal(amounts[journal.KindRevenue]))
	suite.True(decimal.NewFromInt(1100).Equal(amounts[journal.KindCOGS]))

	// The shipment went through its full lifecycle with the cheaper carrier
	transportUow := suite.transportFactory.Create()
	delivered, err := transportUow.ShipmentRepository().Get(ctx, *result.ShipmentID)
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, delivered.Status())
	suite.Equal("T002", delivered.CarrierID())
	suite.True(decimal.NewFromInt(900).Equal(delivered.EstimatedCost()))

	// Credit exposure is released at settlement
	customer, err := uow.PartnerRepository().Get(ctx, "CLI001")
	suite.Require().NoError(err)
	suite.True(customer.ReservedExposure().IsZero())

	// Ledger projection consumed the sold stock
	product1, err := uow.ProductRepository().Get(ctx, "SKU1001")
	suite.Require().NoError(err)
	suite.Equal(10, product1.OnHand())
	suite.Equal(0, product1.Reserved())

	product2, err := uow.ProductRepository().Get(ctx, "SKU1002")
	suite.Require().NoError(err)
	suite.Equal(0, product2.OnHand())

	// Physically the sold units sit staged for the carrier; the rest stays
	// in the aisles
	snapshot, err := suite.warehouseStore.Snapshot(ctx)
	suite.Require().NoError(err)
	suite.Equal(10, snapshot.Locations["AISLE-A-01"]["SKU1001"])
	suite.Equal(0, snapshot.Locations["AISLE-B-01"]["SKU1002"])
	suite.Equal(10, snapshot.Locations["STAGING"]["SKU1001"])
	suite.Equal(5, snapshot.Locations["STAGING"]["SKU1002"])

	order, err := uow.SalesOrderRepository().Get(ctx, "PED-001")
	suite.Require().NoError(err)
	suite.Equal(salesorder.Delivered, order.Status())
	suite.NotNil(order.DeliveredAt())
}

func (suite *SagaIntegrationTestSuite) TestOrderToCashSaga_InsufficientStock_NothingReserved() {
	ctx := context.Background()
	// No procurement ran: the catalog has zero stock.

	cmd, err := commands.NewSubmitSaleCommand("PED-002", "CLI001", []commands.SubmitSaleLine{
		{SKU: "SKU1001", Qty: 10, FromLocationID: "AISLE-A-01"},
	})
	suite.Require().NoError(err)

	_, err = suite.saleHandler.Handle(ctx, cmd)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrInsufficientResource)

	uow := suite.ledgerFactory.Create()

	// The rejected order left nothing behind: no order, no reservation,
	// no journal entries
	_, err = uow.SalesOrderRepository().Get(ctx, "PED-002")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	customer, err := uow.PartnerRepository().Get(ctx, "CLI001")
	suite.Require().NoError(err)
	suite.True(customer.ReservedExposure().IsZero())

	entries, err := uow.JournalRepository().GetByOrder(ctx, "PED-002")
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *SagaIntegrationTestSuite) TestOrderToCashSaga_PickFailure_Compensates() {
	ctx := context.Background()
	suite.runProcurement(ctx)

	// SKU1002 physically sits in aisle B; asking the picker to fetch it
	// from aisle A fails the line after SKU1001 already reached the
	// picking area.
	cmd, err := commands.NewSubmitSaleCommand("PED-003", "CLI001", []commands.SubmitSaleLine{
		{SKU: "SKU1001", Qty: 10, FromLocationID: "AISLE-A-01"},
		{SKU: "SKU1002", Qty: 5, FromLocationID: "AISLE-A-01"},
	})
	suite.Require().NoError(err)

	result, err := suite.saleHandler.Handle(ctx, cmd)
	suite.Require().NoError(err)

	suite.Equal(salesorder.PickFailed, result.Status)
	suite.Nil(result.ShipmentID)
	suite.Require().Len(result.PickResults, 2)
	suite.NoError(result.PickResults[0].Err)
	suite.ErrorIs(result.PickResults[1].Err, errs.ErrInsufficientResource)

	// The picked line was moved back: the warehouse looks exactly as it
	// did after procurement
	snapshot, err := suite.warehouseStore.Snapshot(ctx)
	suite.Require().NoError(err)
	suite.Equal(20, snapshot.Locations["AISLE-A-01"]["SKU1001"])
	suite.Equal(5, snapshot.Locations["AISLE-B-01"]["SKU1002"])
	suite.Equal(0, snapshot.Locations["PICKING"]["SKU1001"])

	uow := suite.ledgerFactory.Create()

	// Ledger reservations were released on both stock and credit
	product1, err := uow.ProductRepository().Get(ctx, "SKU1001")
	suite.Require().NoError(err)
	suite.Equal(20, product1.OnHand())
	suite.Equal(0, product1.Reserved())

	customer, err := uow.PartnerRepository().Get(ctx, "CLI001")
	suite.Require().NoError(err)
	suite.True(customer.ReservedExposure().IsZero())

	order, err := uow.SalesOrderRepository().Get(ctx, "PED-003")
	suite.Require().NoError(err)
	suite.Equal(salesorder.PickFailed, order.Status())

	entries, err := uow.JournalRepository().GetByOrder(ctx, "PED-003")
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func TestSagaIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SagaIntegrationTestSuite))
}
