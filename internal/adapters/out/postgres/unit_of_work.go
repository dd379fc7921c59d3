// Package postgres provides the GORM-based persistence layer.
//
// Each subsystem store (ledger, warehouse, transport) runs every operation in
// its own unit of work: one database transaction opened by Begin, closed by
// Commit or Rollback. A transaction never spans subsystems; cross-subsystem
// consistency is the saga coordinator's job, not the database's.
//
// Basic usage:
//
//	factory := NewGormLedgerUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.ProductRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/journalrepo"
	"fulfillment/internal/adapters/out/postgres/partnerrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/adapters/out/postgres/purchaseorderrepo"
	"fulfillment/internal/adapters/out/postgres/salesorderrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/adapters/out/postgres/stockrepo"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Tracking enables post-commit processing such as an outbox or audit trail.
type trackedAggregate struct {
	ID        any
	Aggregate any
}

// GormUnitOfWork coordinates one database transaction for one store
// operation. It implements all three subsystem unit-of-work ports; the
// factories below hand it out under the narrower interface each store needs.
//
// A GormUnitOfWork instance is not safe for concurrent use; concurrent
// operations must each create their own via a factory.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates the transaction. Calling Begin on a unit of work with an
// open transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open, which makes
// `defer uow.Rollback(ctx)` after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by the repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id any, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ProductRepository provides product persistence within the unit of work.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// PartnerRepository provides partner persistence within the unit of work.
func (uow *GormUnitOfWork) PartnerRepository() ports.PartnerRepository {
	return partnerrepo.NewGormPartnerRepository(uow.conn(), uow)
}

// PurchaseOrderRepository provides purchase order persistence within the unit of work.
func (uow *GormUnitOfWork) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	return purchaseorderrepo.NewGormPurchaseOrderRepository(uow.conn(), uow)
}

// SalesOrderRepository provides sales order persistence within the unit of work.
func (uow *GormUnitOfWork) SalesOrderRepository() ports.SalesOrderRepository {
	return salesorderrepo.NewGormSalesOrderRepository(uow.conn(), uow)
}

// JournalRepository provides journal persistence within the unit of work.
func (uow *GormUnitOfWork) JournalRepository() ports.JournalRepository {
	return journalrepo.NewGormJournalRepository(uow.conn(), uow)
}

// ItemRepository provides item master persistence within the unit of work.
func (uow *GormUnitOfWork) ItemRepository() ports.ItemRepository {
	return stockrepo.NewGormItemRepository(uow.conn(), uow)
}

// LocationRepository provides location persistence within the unit of work.
func (uow *GormUnitOfWork) LocationRepository() ports.LocationRepository {
	return stockrepo.NewGormLocationRepository(uow.conn(), uow)
}

// ShipmentRepository provides shipment persistence within the unit of work.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// CarrierRepository provides carrier persistence within the unit of work.
func (uow *GormUnitOfWork) CarrierRepository() ports.CarrierRepository {
	return shipmentrepo.NewGormCarrierRepository(uow.conn(), uow)
}

// DistanceRepository provides distance table persistence within the unit of work.
func (uow *GormUnitOfWork) DistanceRepository() ports.DistanceRepository {
	return shipmentrepo.NewGormDistanceRepository(uow.conn(), uow)
}

func newGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormLedgerUnitOfWorkFactory creates units of work for the ERP ledger store.
// Each business operation gets a fresh instance with its own transaction
// state, isolated from concurrent operations.
type GormLedgerUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormLedgerUnitOfWorkFactory creates a factory bound to the given
// database connection.
func NewGormLedgerUnitOfWorkFactory(db *gorm.DB) *GormLedgerUnitOfWorkFactory {
	return &GormLedgerUnitOfWorkFactory{db: db}
}

// Create produces a new ledger unit of work.
func (f *GormLedgerUnitOfWorkFactory) Create() ports.LedgerUnitOfWork {
	return newGormUnitOfWork(f.db)
}

// GormWarehouseUnitOfWorkFactory creates units of work for the warehouse store.
type GormWarehouseUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormWarehouseUnitOfWorkFactory creates a factory bound to the given
// database connection.
func NewGormWarehouseUnitOfWorkFactory(db *gorm.DB) *GormWarehouseUnitOfWorkFactory {
	return &GormWarehouseUnitOfWorkFactory{db: db}
}

// Create produces a new warehouse unit of work.
func (f *GormWarehouseUnitOfWorkFactory) Create() ports.WarehouseUnitOfWork {
	return newGormUnitOfWork(f.db)
}

// GormTransportUnitOfWorkFactory creates units of work for the transport store.
type GormTransportUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormTransportUnitOfWorkFactory creates a factory bound to the given
// database connection.
func NewGormTransportUnitOfWorkFactory(db *gorm.DB) *GormTransportUnitOfWorkFactory {
	return &GormTransportUnitOfWorkFactory{db: db}
}

// Create produces a new transport unit of work.
func (f *GormTransportUnitOfWorkFactory) Create() ports.TransportUnitOfWork {
	return newGormUnitOfWork(f.db)
}
