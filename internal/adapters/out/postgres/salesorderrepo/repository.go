package salesorderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSalesOrderRepository implements ports.SalesOrderRepository using GORM.
type GormSalesOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormSalesOrderRepository creates a new GORM sales order repository.
func NewGormSalesOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sales order and its lines to the database.
func (r *GormSalesOrderRepository) Add(ctx context.Context, aggregate *salesorder.SalesOrder) error {
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

// Update saves an existing sales order to the database.
func (r *GormSalesOrderRepository) Update(ctx context.Context, aggregate *salesorder.SalesOrder) error {
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

// Get retrieves a sales order by id with its lines. Within a transaction the
// order row is locked until commit, serializing concurrent lifecycle
// transitions against the same order.
func (r *GormSalesOrderRepository) Get(ctx context.Context, id string) (*salesorder.SalesOrder, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto SalesOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "sales_orders"}}).
		Preload("Lines").
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sales order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByShipment retrieves the sales order bound to the given shipment.
// Freight and delivery confirmations address orders by their shipment.
func (r *GormSalesOrderRepository) GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*salesorder.SalesOrder, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto SalesOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "sales_orders"}}).
		Preload("Lines").
		First(&dto, "shipment_id = ?", shipmentID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
