// Package productrepo provides data transfer objects and mapping functions
// for product persistence. This package implements the repository pattern for
// the product aggregate, handling the conversion between domain entities and
// database representations.
package productrepo

import (
	"fulfillment/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product
// aggregates. The SKU is the natural key; quantities are the ledger's logical
// stock projection, not the physical warehouse balances.
type ProductDTO struct {
	SKU         string          `gorm:"type:varchar(64);primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	SalePrice   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AverageCost decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	OnHand      int             `gorm:"type:int;not null"`
	Reserved    int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		SKU:         p.SKU(),
		Name:        p.Name(),
		SalePrice:   p.SalePrice(),
		AverageCost: p.AverageCost(),
		OnHand:      p.OnHand(),
		Reserved:    p.Reserved(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(
		dto.SKU,
		dto.Name,
		dto.SalePrice,
		dto.AverageCost,
		dto.OnHand,
		dto.Reserved,
	)
}
