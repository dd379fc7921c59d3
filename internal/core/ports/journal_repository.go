package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/journal"
)

// JournalRepository defines the persistence contract for the financial
// journal. The journal is append-only: entries are never updated or deleted.
type JournalRepository interface {
	// Append persists a new journal entry.
	Append(ctx context.Context, entry *journal.Entry) error

	// GetByOrder retrieves every entry posted against the given sales order,
	// ordered by posting time.
	GetByOrder(ctx context.Context, orderID string) ([]*journal.Entry, error)
}
