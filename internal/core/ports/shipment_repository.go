package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates with their load lines.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by id with all its lines.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllInStatus retrieves every shipment currently in the given status,
	// ordered by id. Used by the stalled-shipment sweep.
	GetAllInStatus(ctx context.Context, status shipment.Status) ([]*shipment.Shipment, error)
}

// CarrierRepository defines the persistence contract for the carrier
// registry. Carriers are reference data: written once at configuration time,
// read by planning.
type CarrierRepository interface {
	// Add persists a new carrier to storage.
	Add(ctx context.Context, carrier *shipment.Carrier) error

	// GetAll retrieves every registered carrier, ordered by id.
	GetAll(ctx context.Context) ([]*shipment.Carrier, error)
}

// DistanceRepository defines the persistence contract for the route distance
// table, keyed by origin and destination city.
type DistanceRepository interface {
	// Add persists the distance for a city pair.
	Add(ctx context.Context, originCity, destinationCity string, km decimal.Decimal) error

	// Get retrieves the distance in kilometers for a city pair. Returns an
	// ObjectNotFoundError when the pair is not in the table; the planner
	// never infers or interpolates a missing route.
	Get(ctx context.Context, originCity, destinationCity string) (decimal.Decimal, error)
}
