// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operational checks the sagas themselves do not run.
//
// # Available Jobs
//
// 1. CatalogReconciliationJob - Periodically verifies that the ledger catalog
// and the warehouse item master agree on the SKU set
// 2. StalledShipmentJob - Periodically reports shipments that were created
// but never planned, which indicates an abandoned order-to-cash saga
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(loader, transportUoWFactory, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs are observers: they log what they find and never mutate state.
// A reconciliation divergence is logged as an error because it means master
// data was changed outside the loader; stalled shipments are logged as
// warnings for the operator to resolve.
package jobs
