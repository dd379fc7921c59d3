package postgres

import (
	"fulfillment/internal/adapters/out/postgres/journalrepo"
	"fulfillment/internal/adapters/out/postgres/partnerrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/adapters/out/postgres/purchaseorderrepo"
	"fulfillment/internal/adapters/out/postgres/salesorderrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/adapters/out/postgres/stockrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&partnerrepo.PartnerDTO{},
		&purchaseorderrepo.PurchaseOrderDTO{},
		&purchaseorderrepo.LineDTO{},
		&salesorderrepo.SalesOrderDTO{},
		&salesorderrepo.LineDTO{},
		&journalrepo.EntryDTO{},
		&stockrepo.ItemDTO{},
		&stockrepo.LocationDTO{},
		&stockrepo.BalanceDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.LineDTO{},
		&shipmentrepo.CarrierDTO{},
		&shipmentrepo.DistanceDTO{},
	)
}
