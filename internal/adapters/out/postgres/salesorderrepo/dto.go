// Package salesorderrepo provides data transfer objects and mapping
// functions for sales order persistence, including the order's line set and
// its shipment binding.
package salesorderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/salesorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesOrderDTO represents the database structure for persisting sales order
// aggregates. ShipmentID and DeliveredAt stay NULL until the order reaches
// the corresponding status.
type SalesOrderDTO struct {
	ID          string     `gorm:"type:varchar(64);primaryKey"`
	CustomerID  string     `gorm:"type:varchar(64);not null;index"`
	Status      int        `gorm:"type:smallint;not null;index"`
	ShipmentID  *uuid.UUID `gorm:"type:uuid;index"`
	DeliveredAt *time.Time
	Lines       []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for sales order entities.
func (SalesOrderDTO) TableName() string {
	return "sales_orders"
}

// LineDTO represents one sales order line with its captured pricing.
type LineDTO struct {
	OrderID    string          `gorm:"type:varchar(64);primaryKey"`
	SKU        string          `gorm:"type:varchar(64);primaryKey"`
	Qty        int             `gorm:"type:int;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CostAtSale decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Picked     int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for sales order lines.
func (LineDTO) TableName() string {
	return "sales_order_lines"
}

// fromDomain converts a sales order aggregate to its database representation.
func fromDomain(so *salesorder.SalesOrder) SalesOrderDTO {
	var shipmentID *uuid.UUID
	if id := so.ShipmentID(); id != nil {
		raw := id.Bytes()
		shipmentID = &raw
	}

	lines := make([]LineDTO, 0, len(so.Lines()))
	for _, l := range so.Lines() {
		lines = append(lines, LineDTO{
			OrderID:    so.ID(),
			SKU:        l.SKU(),
			Qty:        l.Qty(),
			UnitPrice:  l.UnitPrice(),
			CostAtSale: l.CostAtSale(),
			Picked:     l.Picked(),
		})
	}

	return SalesOrderDTO{
		ID:          so.ID(),
		CustomerID:  so.CustomerID(),
		Status:      int(so.Status()),
		ShipmentID:  shipmentID,
		DeliveredAt: so.DeliveredAt(),
		Lines:       lines,
	}
}

// toDomain converts a database DTO to a sales order aggregate.
func toDomain(dto SalesOrderDTO) (*salesorder.SalesOrder, error) {
	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, err := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if err != nil {
			return nil, err
		}
		shipmentID = &sID
	}

	lines := make([]*salesorder.Line, 0, len(dto.Lines))
	for _, lDto := range dto.Lines {
		l, err := salesorder.RestoreLine(lDto.SKU, lDto.Qty, lDto.UnitPrice, lDto.CostAtSale, lDto.Picked)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return salesorder.RestoreSalesOrder(
		dto.ID,
		dto.CustomerID,
		lines,
		salesorder.Status(dto.Status),
		shipmentID,
		dto.DeliveredAt,
	)
}
