package shipmentrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GormCarrierRepository implements ports.CarrierRepository using GORM.
type GormCarrierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCarrierRepository creates a new GORM carrier repository.
func NewGormCarrierRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRepository {
	return &GormCarrierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carrier contract to the database.
func (r *GormCarrierRepository) Add(ctx context.Context, carrier *shipment.Carrier) error {
	if err := carrier.Validate(); err != nil {
		return err
	}

	dto := carrierFromDomain(carrier)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(carrier.ID(), carrier)
	return nil
}

// GetAll retrieves every carrier contract, ordered by id.
func (r *GormCarrierRepository) GetAll(ctx context.Context) ([]*shipment.Carrier, error) {
	var dtos []CarrierDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	carriers := make([]*shipment.Carrier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := carrierToDomain(dto)
		if err != nil {
			return nil, err
		}
		carriers = append(carriers, c)
	}

	return carriers, nil
}
