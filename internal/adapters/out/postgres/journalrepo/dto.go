// Package journalrepo provides data transfer objects and mapping functions
// for the append-only financial journal.
package journalrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDTO represents the database structure for persisting journal entries.
// Rows are only ever inserted; there is no update path.
type EntryDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind       int             `gorm:"type:smallint;not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	OrderID    string          `gorm:"type:varchar(64);not null;index"`
	ShipmentID *uuid.UUID      `gorm:"type:uuid;index"`
	PostedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for journal entries.
func (EntryDTO) TableName() string {
	return "journal_entries"
}

// fromDomain converts a journal entry to its database representation.
func fromDomain(e *journal.Entry) EntryDTO {
	var shipmentID *uuid.UUID
	if id := e.ShipmentID(); id != nil {
		raw := id.Bytes()
		shipmentID = &raw
	}

	return EntryDTO{
		ID:         e.ID().Bytes(),
		Kind:       int(e.Kind()),
		Amount:     e.Amount(),
		OrderID:    e.OrderID(),
		ShipmentID: shipmentID,
		PostedAt:   e.PostedAt(),
	}
}

// toDomain converts a database DTO to a journal entry.
func toDomain(dto EntryDTO) (*journal.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, sErr := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if sErr != nil {
			return nil, sErr
		}
		shipmentID = &sID
	}

	return journal.RestoreEntry(
		id,
		journal.Kind(dto.Kind),
		dto.Amount,
		dto.OrderID,
		shipmentID,
		dto.PostedAt,
	)
}
