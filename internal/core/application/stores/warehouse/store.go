// Package warehouse is the application service of the physical inventory
// subsystem. It owns the warehouse's item catalog and the named locations
// with their per-SKU balances, and exposes the receive / move / pick
// primitives plus a read-only snapshot.
//
// Every operation runs in its own unit of work; a rejected movement leaves
// no partial change behind.
package warehouse

import (
	"context"

	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"
)

// Store exposes the warehouse's operations.
type Store struct {
	uowFactory ports.WarehouseUnitOfWorkFactory
}

// NewStore creates a warehouse store backed by the given unit-of-work
// factory.
func NewStore(uowFactory ports.WarehouseUnitOfWorkFactory) Store {
	return Store{
		uowFactory: uowFactory,
	}
}

// Item retrieves the catalog entry for the given SKU. The transport
// subsystem needs the physical data (unit weight and volume) when a load is
// built.
func (s Store) Item(ctx context.Context, sku string) (*stock.Item, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.ItemRepository().Get(ctx, sku)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

// transfer debits sku at from and credits it at to inside the transaction
// bound to uow. The debit is checked before anything mutates, so a shortfall
// leaves both locations untouched.
//
// Locations are fetched in id order so two concurrent transfers over the
// same pair cannot deadlock on their row locks.
func transfer(ctx context.Context, uow ports.WarehouseUnitOfWork, sku string, qty int, fromID, toID string) error {
	first, second := fromID, toID
	if second < first {
		first, second = second, first
	}

	locations := make(map[string]*stock.Location, 2)
	for _, id := range []string{first, second} {
		loc, err := uow.LocationRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		locations[id] = loc
	}

	from, to := locations[fromID], locations[toID]

	if err := from.Debit(sku, qty); err != nil {
		return err
	}

	if err := to.Credit(sku, qty); err != nil {
		return err
	}

	if err := uow.LocationRepository().Update(ctx, from); err != nil {
		return err
	}

	return uow.LocationRepository().Update(ctx, to)
}
