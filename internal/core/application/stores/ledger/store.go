// Package ledger is the application service of the ERP subsystem. It owns
// the product catalog with its stock projection, the partner registry,
// purchase and sales orders, and the financial journal.
//
// Every operation runs in its own unit of work: one database transaction per
// call, committed before the result is returned. No transaction ever spans
// into the warehouse or transport subsystems.
package ledger

import (
	"fulfillment/internal/core/ports"
)

// Store exposes the ledger's operations to the saga coordinator and the
// query surface. All state access goes through repositories handed out by
// the unit of work; there is no ambient registry.
type Store struct {
	uowFactory ports.LedgerUnitOfWorkFactory
}

// NewStore creates a ledger store backed by the given unit-of-work factory.
func NewStore(uowFactory ports.LedgerUnitOfWorkFactory) Store {
	return Store{
		uowFactory: uowFactory,
	}
}
