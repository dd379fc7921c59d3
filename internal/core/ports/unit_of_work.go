package ports

import (
	"context"
)

// UnitOfWork represents a business transaction boundary.
// It provides transaction control; client code must explicitly manage the
// transaction lifecycle.
//
// Each subsystem owns its own unit of work and no transaction ever spans two
// subsystems. The saga coordinator sequences one committed transaction per
// store call and reacts to each outcome; it never gets a rollback across
// store boundaries.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error
}

// LedgerUnitOfWorkFactory creates a new LedgerUnitOfWork per operation.
// This ensures proper isolation between concurrent operations.
type LedgerUnitOfWorkFactory interface {
	Create() LedgerUnitOfWork
}

// LedgerUnitOfWork is the transaction boundary of the ledger subsystem.
// All repositories it hands out are bound to the transaction started by
// Begin().
type LedgerUnitOfWork interface {
	UnitOfWork

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository

	// PartnerRepository returns a PartnerRepository bound to the current transaction.
	PartnerRepository() PartnerRepository

	// PurchaseOrderRepository returns a PurchaseOrderRepository bound to the current transaction.
	PurchaseOrderRepository() PurchaseOrderRepository

	// SalesOrderRepository returns a SalesOrderRepository bound to the current transaction.
	SalesOrderRepository() SalesOrderRepository

	// JournalRepository returns a JournalRepository bound to the current transaction.
	JournalRepository() JournalRepository
}

// WarehouseUnitOfWorkFactory creates a new WarehouseUnitOfWork per operation.
type WarehouseUnitOfWorkFactory interface {
	Create() WarehouseUnitOfWork
}

// WarehouseUnitOfWork is the transaction boundary of the warehouse subsystem.
type WarehouseUnitOfWork interface {
	UnitOfWork

	// ItemRepository returns an ItemRepository bound to the current transaction.
	ItemRepository() ItemRepository

	// LocationRepository returns a LocationRepository bound to the current transaction.
	LocationRepository() LocationRepository
}

// TransportUnitOfWorkFactory creates a new TransportUnitOfWork per operation.
type TransportUnitOfWorkFactory interface {
	Create() TransportUnitOfWork
}

// TransportUnitOfWork is the transaction boundary of the transport subsystem.
type TransportUnitOfWork interface {
	UnitOfWork

	// ShipmentRepository returns a ShipmentRepository bound to the current transaction.
	ShipmentRepository() ShipmentRepository

	// CarrierRepository returns a CarrierRepository bound to the current transaction.
	CarrierRepository() CarrierRepository

	// DistanceRepository returns a DistanceRepository bound to the current transaction.
	DistanceRepository() DistanceRepository
}
