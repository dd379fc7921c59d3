package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/masterdata"
	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	catalogReconciliationJob *CatalogReconciliationJob
	stalledShipmentJob       *StalledShipmentJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	loader *masterdata.Loader,
	transportUoWFactory ports.TransportUnitOfWorkFactory,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		catalogReconciliationJob: NewCatalogReconciliationJob(loader, logger),
		stalledShipmentJob:       NewStalledShipmentJob(transportUoWFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.catalogReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start catalog reconciliation job: %w", err)
	}

	if err := jm.stalledShipmentJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.catalogReconciliationJob.Stop()
		return fmt.Errorf("failed to start stalled shipment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalledShipmentJob.Stop()
	jm.catalogReconciliationJob.Stop()
}
