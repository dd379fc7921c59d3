package purchaseorderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/purchaseorder"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPurchaseOrderRepository implements ports.PurchaseOrderRepository using GORM.
type GormPurchaseOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormPurchaseOrderRepository creates a new GORM purchase order repository.
func NewGormPurchaseOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new purchase order and its lines to the database.
func (r *GormPurchaseOrderRepository) Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing purchase order to the database.
func (r *GormPurchaseOrderRepository) Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Use Session with FullSaveAssociations to properly update the line rows
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a purchase order by id with its lines. Within a transaction
// the order row is locked until commit, serializing concurrent receipt
// confirmations against the same order.
func (r *GormPurchaseOrderRepository) Get(ctx context.Context, id string) (*purchaseorder.PurchaseOrder, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto PurchaseOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "purchase_orders"}}).
		Preload("Lines").
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchase order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
