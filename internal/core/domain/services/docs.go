// Package services provides domain services that implement business logic
// spanning multiple aggregates of the fulfillment system.
//
// The package includes:
//   - CarrierSelector: picks the cheapest carrier for a shipment over a route
//   - CatalogReconciler: checks that the ledger and warehouse catalogs agree
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root.
package services
