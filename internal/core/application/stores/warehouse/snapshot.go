package warehouse

import (
	"context"
)

// SnapshotResult is a read-only aggregation of every location's balances.
// Totals sums each SKU across all locations.
type SnapshotResult struct {
	Locations map[string]map[string]int
	Totals    map[string]int
}

// Snapshot reads every location's balances without side effects.
func (s Store) Snapshot(ctx context.Context) (SnapshotResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SnapshotResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locations, err := uow.LocationRepository().GetAll(ctx)
	if err != nil {
		return SnapshotResult{}, err
	}

	result := SnapshotResult{
		Locations: make(map[string]map[string]int, len(locations)),
		Totals:    make(map[string]int),
	}

	for _, loc := range locations {
		balances := loc.Balances()
		result.Locations[loc.ID()] = balances
		for sku, qty := range balances {
			result.Totals[sku] += qty
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SnapshotResult{}, err
	}

	return result, nil
}
