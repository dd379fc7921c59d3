// Package stockrepo provides data transfer objects and mapping functions for
// warehouse stock persistence: the item master and the per-location balances.
package stockrepo

import (
	"fulfillment/internal/core/domain/model/stock"

	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for persisting item master
// records. Items carry the physical attributes the warehouse and transport
// subsystems need; pricing lives with the ledger's products.
type ItemDTO struct {
	SKU         string          `gorm:"type:varchar(64);primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	UnitWeight  decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	UnitVolume  decimal.Decimal `gorm:"type:numeric(10,4);not null"`
}

// TableName specifies the database table name for item master records.
func (ItemDTO) TableName() string {
	return "items"
}

// LocationDTO represents the database structure for persisting warehouse
// locations. The balance rows carry the actual stock; a location row with no
// balances is an empty location.
type LocationDTO struct {
	ID       string       `gorm:"type:varchar(64);primaryKey"`
	Balances []BalanceDTO `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for warehouse locations.
func (LocationDTO) TableName() string {
	return "locations"
}

// BalanceDTO represents one non-zero per-SKU balance of a location.
type BalanceDTO struct {
	LocationID string `gorm:"type:varchar(64);primaryKey"`
	SKU        string `gorm:"type:varchar(64);primaryKey"`
	Qty        int    `gorm:"type:int;not null"`
}

// TableName specifies the database table name for location balances.
func (BalanceDTO) TableName() string {
	return "location_balances"
}

// itemFromDomain converts an item master record to its database representation.
func itemFromDomain(i *stock.Item) ItemDTO {
	return ItemDTO{
		SKU:         i.SKU(),
		Name:        i.Name(),
		Description: i.Description(),
		UnitWeight:  i.UnitWeight(),
		UnitVolume:  i.UnitVolume(),
	}
}

// itemToDomain converts a database DTO to an item master record.
func itemToDomain(dto ItemDTO) (*stock.Item, error) {
	return stock.NewItem(dto.SKU, dto.Name, dto.Description, dto.UnitWeight, dto.UnitVolume)
}

// locationFromDomain converts a location aggregate to its database representation.
func locationFromDomain(l *stock.Location) LocationDTO {
	balances := make([]BalanceDTO, 0, len(l.Balances()))
	for sku, qty := range l.Balances() {
		balances = append(balances, BalanceDTO{
			LocationID: l.ID(),
			SKU:        sku,
			Qty:        qty,
		})
	}

	return LocationDTO{
		ID:       l.ID(),
		Balances: balances,
	}
}

// locationToDomain converts a database DTO to a location aggregate.
func locationToDomain(dto LocationDTO) (*stock.Location, error) {
	balances := make(map[string]int, len(dto.Balances))
	for _, b := range dto.Balances {
		balances[b.SKU] = b.Qty
	}

	return stock.RestoreLocation(dto.ID, balances)
}
