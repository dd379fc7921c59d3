package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"
)

// SalesOrderRepository defines the persistence contract for sales order
// aggregates with their lines and shipment binding.
type SalesOrderRepository interface {
	// Add persists a new sales order aggregate to storage.
	Add(ctx context.Context, aggregate *salesorder.SalesOrder) error

	// Update persists changes to an existing sales order aggregate.
	Update(ctx context.Context, aggregate *salesorder.SalesOrder) error

	// Get retrieves a sales order by id with all its lines.
	Get(ctx context.Context, id string) (*salesorder.SalesOrder, error)

	// GetByShipment retrieves the sales order bound to the given shipment.
	// Returns an ObjectNotFoundError when no order references the shipment.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*salesorder.SalesOrder, error)
}
