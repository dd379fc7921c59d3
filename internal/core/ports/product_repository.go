// Package ports defines repository and unit-of-work interfaces for the three
// fulfillment subsystems. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the ledger's product
// catalog, including its on-hand/reserved stock projection.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by SKU. Inside a transaction the row is locked
	// for update, so concurrent reservations on the same SKU serialize.
	Get(ctx context.Context, sku string) (*product.Product, error)

	// GetAll retrieves the whole catalog, ordered by SKU.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
