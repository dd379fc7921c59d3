package cmd

import (
	"log/slog"
	"time"

	apihttp "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/masterdata"
	"fulfillment/internal/core/application/stores/ledger"
	"fulfillment/internal/core/application/stores/transport"
	"fulfillment/internal/core/application/stores/warehouse"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

// Warehouse topology the sagas operate against. Inbound stock lands in the
// receiving dock, sales are picked out of the picking area and staged before
// dispatch.
const (
	receivingLocationID = "RECEIVING"
	pickingLocationID   = "PICKING"
	stagingLocationID   = "STAGING"

	transitTime = 72 * time.Hour
)

type CompositionRoot struct {
	gormDB *gorm.DB

	ledgerUoWFactory    *postgres.GormLedgerUnitOfWorkFactory
	warehouseUoWFactory *postgres.GormWarehouseUnitOfWorkFactory
	transportUoWFactory *postgres.GormTransportUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:              gormDB,
		ledgerUoWFactory:    postgres.NewGormLedgerUnitOfWorkFactory(gormDB),
		warehouseUoWFactory: postgres.NewGormWarehouseUnitOfWorkFactory(gormDB),
		transportUoWFactory: postgres.NewGormTransportUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateLedgerStore() ledger.Store {
	return ledger.NewStore(c.ledgerUoWFactory)
}

func (c *CompositionRoot) CreateWarehouseStore() warehouse.Store {
	return warehouse.NewStore(c.warehouseUoWFactory)
}

func (c *CompositionRoot) CreateTransportStore() transport.Store {
	return transport.NewStore(c.transportUoWFactory)
}

func (c *CompositionRoot) CreateSubmitPurchaseCommandHandler() commands.SubmitPurchaseCommandHandler {
	return commands.NewSubmitPurchaseCommandHandler(
		c.CreateLedgerStore(),
		c.CreateWarehouseStore(),
		receivingLocationID,
	)
}

func (c *CompositionRoot) CreateSubmitSaleCommandHandler() (commands.SubmitSaleCommandHandler, error) {
	origin, err := warehouseAddress()
	if err != nil {
		return commands.SubmitSaleCommandHandler{}, err
	}

	return commands.NewSubmitSaleCommandHandler(
		c.CreateLedgerStore(),
		c.CreateWarehouseStore(),
		c.CreateTransportStore(),
		pickingLocationID,
		stagingLocationID,
		origin,
		transitTime,
	), nil
}

func (c *CompositionRoot) CreateGetPurchaseOrderQueryHandler() queries.GetPurchaseOrderQueryHandler {
	return queries.NewGetPurchaseOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesOrderQueryHandler() queries.GetSalesOrderQueryHandler {
	return queries.NewGetSalesOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJournalQueryHandler() queries.GetJournalQueryHandler {
	return queries.NewGetJournalQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateMasterDataLoader() (*masterdata.Loader, error) {
	return masterdata.NewLoader(
		c.ledgerUoWFactory,
		c.warehouseUoWFactory,
		c.transportUoWFactory,
	)
}

func (c *CompositionRoot) CreateJobManager(loader *masterdata.Loader, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(loader, c.transportUoWFactory, logger)
}

func (c *CompositionRoot) CreateHTTPServer() (*apihttp.Server, error) {
	submitPurchaseHandler := c.CreateSubmitPurchaseCommandHandler()
	submitSaleHandler, err := c.CreateSubmitSaleCommandHandler()
	if err != nil {
		return nil, err
	}

	return apihttp.NewServer(
		&submitPurchaseHandler,
		&submitSaleHandler,
		c.CreateGetPurchaseOrderQueryHandler(),
		c.CreateGetSalesOrderQueryHandler(),
		c.CreateGetShipmentQueryHandler(),
		c.CreateGetStockQueryHandler(),
		c.CreateGetJournalQueryHandler(),
	), nil
}

// warehouseAddress is the origin every outbound shipment departs from.
func warehouseAddress() (kernel.Address, error) {
	return kernel.NewAddress("Rua do Armazém Principal", "500", "São Paulo", "SP", "01000-000")
}
