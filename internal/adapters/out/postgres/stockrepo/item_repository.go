package stockrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ports.ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormItemRepository creates a new GORM item master repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new item master record to the database.
func (r *GormItemRepository) Add(ctx context.Context, item *stock.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.SKU(), item)
	return nil
}

// Get retrieves an item master record by SKU.
func (r *GormItemRepository) Get(ctx context.Context, sku string) (*stock.Item, error) {
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", sku)
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// GetAll retrieves every item master record, ordered by SKU.
func (r *GormItemRepository) GetAll(ctx context.Context) ([]*stock.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("sku").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*stock.Item, 0, len(dtos))
	for _, dto := range dtos {
		i, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}

	return items, nil
}
