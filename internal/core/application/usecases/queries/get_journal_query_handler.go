package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJournalQueryHandler retrieves journal entries from the database.
type GetJournalQueryHandler struct {
	db *gorm.DB
}

// NewGetJournalQueryHandler creates a handler for journal listing queries.
func NewGetJournalQueryHandler(db *gorm.DB) GetJournalQueryHandler {
	return GetJournalQueryHandler{db: db}
}

// Handle executes the query. Entries come back in posting order; an empty
// journal yields an empty slice, not an error.
func (h GetJournalQueryHandler) Handle(
	ctx context.Context,
	query GetJournalQuery,
) ([]GetJournalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT
			id,
			kind,
			amount,
			order_id,
			shipment_id,
			posted_at
		FROM journal_entries
	`
	args := []any{}
	if query.OrderID() != "" {
		q += ` WHERE order_id = ?`
		args = append(args, query.OrderID())
	}
	q += ` ORDER BY posted_at, id`

	rows, err := h.db.WithContext(ctx).Raw(q, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetJournalQueryResponse, 0)

	for rows.Next() {
		var entry GetJournalQueryResponse
		var id uuid.UUID
		var kind int
		var shipmentID uuid.NullUUID
		var postedAt sql.NullTime

		err = rows.Scan(&id, &kind, &entry.Amount, &entry.OrderID, &shipmentID, &postedAt)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID
		entry.Kind = journal.Kind(kind).String()
		if shipmentID.Valid {
			sid, sidErr := kernel.UUIDFromBytes(shipmentID.UUID[:])
			if sidErr != nil {
				return nil, sidErr
			}
			entry.ShipmentID = &sid
		}
		if postedAt.Valid {
			entry.PostedAt = postedAt.Time.UTC()
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
