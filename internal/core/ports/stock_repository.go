package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/stock"
)

// ItemRepository defines the persistence contract for the warehouse's own
// item catalog.
type ItemRepository interface {
	// Add persists a new catalog item to storage.
	Add(ctx context.Context, item *stock.Item) error

	// Get retrieves a catalog item by SKU.
	Get(ctx context.Context, sku string) (*stock.Item, error)

	// GetAll retrieves the whole catalog, ordered by SKU.
	GetAll(ctx context.Context) ([]*stock.Item, error)
}

// LocationRepository defines the persistence contract for warehouse
// locations and their per-SKU balances.
type LocationRepository interface {
	// Add persists a new location aggregate to storage.
	Add(ctx context.Context, aggregate *stock.Location) error

	// Update persists changes to an existing location aggregate.
	Update(ctx context.Context, aggregate *stock.Location) error

	// Get retrieves a location by id with all its balances. Inside a
	// transaction the location's balance rows are locked for update, so
	// concurrent movements touching the same location serialize.
	Get(ctx context.Context, id string) (*stock.Location, error)

	// GetAll retrieves every location, ordered by id.
	GetAll(ctx context.Context) ([]*stock.Location, error)
}
