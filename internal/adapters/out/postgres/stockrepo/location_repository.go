package stockrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository implements ports.LocationRepository using GORM.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new location and its balances to the database.
func (r *GormLocationRepository) Add(ctx context.Context, aggregate *stock.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := locationFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites a location's balance rows. A full debit drops the balance
// entry in the aggregate, so the rows are replaced rather than upserted;
// otherwise emptied balances would linger in the table.
func (r *GormLocationRepository) Update(ctx context.Context, aggregate *stock.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := locationFromDomain(aggregate)

	err := r.db.WithContext(ctx).
		Where("location_id = ?", dto.ID).
		Delete(&BalanceDTO{}).Error
	if err != nil {
		return err
	}

	if len(dto.Balances) > 0 {
		if err = r.db.WithContext(ctx).Create(&dto.Balances).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a location by id with its balances. Within a transaction the
// location row is locked until commit; callers that move stock between two
// locations must fetch them in lexicographic id order to avoid deadlocks.
func (r *GormLocationRepository) Get(ctx context.Context, id string) (*stock.Location, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto LocationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "locations"}}).
		Preload("Balances").
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", id)
		}
		return nil, err
	}

	return locationToDomain(dto)
}

// GetAll retrieves every location with its balances, ordered by id.
func (r *GormLocationRepository) GetAll(ctx context.Context) ([]*stock.Location, error) {
	var dtos []LocationDTO
	err := r.db.WithContext(ctx).
		Preload("Balances").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	locations := make([]*stock.Location, 0, len(dtos))
	for _, dto := range dtos {
		l, lErr := locationToDomain(dto)
		if lErr != nil {
			return nil, lErr
		}
		locations = append(locations, l)
	}

	return locations, nil
}
