package journalrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJournalRepository implements ports.JournalRepository using GORM.
type GormJournalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormJournalRepository creates a new GORM journal repository.
func NewGormJournalRepository(db *gorm.DB, tracker aggregateTracker) *GormJournalRepository {
	return &GormJournalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append saves a new journal entry. Entries are immutable once written.
func (r *GormJournalRepository) Append(ctx context.Context, entry *journal.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetByOrder retrieves all entries posted against the given order, in posting
// order.
func (r *GormJournalRepository) GetByOrder(ctx context.Context, orderID string) ([]*journal.Entry, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Order("posted_at, id").
		Find(&dtos, "order_id = ?", orderID).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*journal.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, dErr := toDomain(dto)
		if dErr != nil {
			return nil, dErr
		}
		entries = append(entries, e)
	}

	return entries, nil
}
