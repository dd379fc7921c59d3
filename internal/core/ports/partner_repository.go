package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for customers and
// suppliers, including the customer's reserved credit exposure.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner aggregate.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner by id. Inside a transaction the row is locked
	// for update, so concurrent credit reservations on the same customer
	// serialize.
	Get(ctx context.Context, id string) (*partner.Partner, error)
}
