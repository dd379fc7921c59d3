package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormDistanceRepository implements ports.DistanceRepository using GORM.
// Distances are directed; the master data loader registers both directions.
type GormDistanceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDistanceRepository creates a new GORM distance repository.
func NewGormDistanceRepository(db *gorm.DB, tracker aggregateTracker) *GormDistanceRepository {
	return &GormDistanceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a directed city-to-city distance to the database.
func (r *GormDistanceRepository) Add(ctx context.Context, originCity, destinationCity string, km decimal.Decimal) error {
	if originCity == "" {
		return errs.NewValueIsRequiredError("originCity")
	}
	if destinationCity == "" {
		return errs.NewValueIsRequiredError("destinationCity")
	}
	if !km.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("km",
			fmt.Errorf("%s is not greater than 0", km))
	}

	dto := DistanceDTO{
		OriginCity:      originCity,
		DestinationCity: destinationCity,
		Km:              km,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves the distance between two cities. Returns an
// ObjectNotFoundError when the lane is not registered, which makes the
// shipment unplannable.
func (r *GormDistanceRepository) Get(ctx context.Context, originCity, destinationCity string) (decimal.Decimal, error) {
	if originCity == "" {
		return decimal.Zero, errs.NewValueIsRequiredError("originCity")
	}
	if destinationCity == "" {
		return decimal.Zero, errs.NewValueIsRequiredError("destinationCity")
	}

	var dto DistanceDTO
	err := r.db.WithContext(ctx).
		First(&dto, "origin_city = ? AND destination_city = ?", originCity, destinationCity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, errs.NewObjectNotFoundError("distance",
				originCity+" -> "+destinationCity)
		}
		return decimal.Zero, err
	}

	return dto.Km, nil
}
