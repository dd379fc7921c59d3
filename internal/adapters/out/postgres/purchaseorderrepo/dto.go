// Package purchaseorderrepo provides data transfer objects and mapping
// functions for purchase order persistence, including the order's line set.
package purchaseorderrepo

import (
	"fulfillment/internal/core/domain/model/purchaseorder"

	"github.com/shopspring/decimal"
)

// PurchaseOrderDTO represents the database structure for persisting purchase
// order aggregates. Lines live in their own table keyed by order id and SKU.
type PurchaseOrderDTO struct {
	ID         string    `gorm:"type:varchar(64);primaryKey"`
	SupplierID string    `gorm:"type:varchar(64);not null;index"`
	Status     int       `gorm:"type:smallint;not null;index"`
	Lines      []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for purchase order entities.
func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// LineDTO represents one purchase order line.
type LineDTO struct {
	OrderID  string          `gorm:"type:varchar(64);primaryKey"`
	SKU      string          `gorm:"type:varchar(64);primaryKey"`
	Ordered  int             `gorm:"type:int;not null"`
	UnitCost decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Received int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for purchase order lines.
func (LineDTO) TableName() string {
	return "purchase_order_lines"
}

// fromDomain converts a purchase order aggregate to its database representation.
func fromDomain(po *purchaseorder.PurchaseOrder) PurchaseOrderDTO {
	lines := make([]LineDTO, 0, len(po.Lines()))
	for _, l := range po.Lines() {
		lines = append(lines, LineDTO{
			OrderID:  po.ID(),
			SKU:      l.SKU(),
			Ordered:  l.Ordered(),
			UnitCost: l.UnitCost(),
			Received: l.Received(),
		})
	}

	return PurchaseOrderDTO{
		ID:         po.ID(),
		SupplierID: po.SupplierID(),
		Status:     int(po.Status()),
		Lines:      lines,
	}
}

// toDomain converts a database DTO to a purchase order aggregate.
func toDomain(dto PurchaseOrderDTO) (*purchaseorder.PurchaseOrder, error) {
	lines := make([]*purchaseorder.Line, 0, len(dto.Lines))
	for _, lDto := range dto.Lines {
		l, err := purchaseorder.RestoreLine(lDto.SKU, lDto.Ordered, lDto.UnitCost, lDto.Received)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return purchaseorder.RestorePurchaseOrder(
		dto.ID,
		dto.SupplierID,
		lines,
		purchaseorder.Status(dto.Status),
	)
}
