// Package masterdata seeds the reference data every subsystem needs before
// the first saga runs: the ledger catalog and partners, the warehouse item
// master and locations, and the transport carriers and distance table.
//
// Loading ends with the catalog reconciliation check; a ledger catalog that
// diverges from the warehouse item master fails the load outright.
package masterdata

import (
	"github.com/shopspring/decimal"
)

// Dataset declares the master data to load. The loader converts these plain
// definitions into domain aggregates, so constructor validation applies to
// every entry.
type Dataset struct {
	Products  []ProductSpec
	Customers []CustomerSpec
	Suppliers []SupplierSpec
	Items     []ItemSpec
	Locations []string
	Carriers  []CarrierSpec
	Distances []DistanceSpec
}

// ProductSpec declares one ledger catalog product.
type ProductSpec struct {
	SKU         string
	Name        string
	SalePrice   decimal.Decimal
	AverageCost decimal.Decimal
}

// CustomerSpec declares one customer partner with its credit limit.
type CustomerSpec struct {
	ID          string
	Name        string
	TaxID       string
	Address     AddressSpec
	CreditLimit decimal.Decimal
}

// SupplierSpec declares one supplier partner with its lead time.
type SupplierSpec struct {
	ID           string
	Name         string
	TaxID        string
	Address      AddressSpec
	LeadTimeDays int
}

// AddressSpec declares a postal address.
type AddressSpec struct {
	Street string
	Number string
	City   string
	State  string
	Zip    string
}

// ItemSpec declares one warehouse item master record.
type ItemSpec struct {
	SKU         string
	Name        string
	Description string
	UnitWeight  decimal.Decimal
	UnitVolume  decimal.Decimal
}

// CarrierSpec declares one carrier contract.
type CarrierSpec struct {
	ID          string
	Name        string
	RatePerKmKg decimal.Decimal
}

// DistanceSpec declares one directed city-to-city distance. Lanes served in
// both directions need two entries.
type DistanceSpec struct {
	OriginCity      string
	DestinationCity string
	Km              decimal.Decimal
}
