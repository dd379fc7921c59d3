package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/purchaseorder"
)

// PurchaseOrderRepository defines the persistence contract for purchase order
// aggregates with their lines.
type PurchaseOrderRepository interface {
	// Add persists a new purchase order aggregate to storage.
	Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Update persists changes to an existing purchase order aggregate.
	Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Get retrieves a purchase order by id with all its lines.
	Get(ctx context.Context, id string) (*purchaseorder.PurchaseOrder, error)
}
