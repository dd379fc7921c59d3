package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/masterdata"

	"github.com/robfig/cron/v3"
)

// CatalogReconciliationJob periodically verifies that the ledger catalog and
// the warehouse item master agree on the SKU set. The same check runs at
// startup; this job catches divergence introduced at runtime.
type CatalogReconciliationJob struct {
	loader *masterdata.Loader
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCatalogReconciliationJob creates a job that reconciles the catalogs
// once a minute.
func NewCatalogReconciliationJob(loader *masterdata.Loader, logger *slog.Logger) *CatalogReconciliationJob {
	return &CatalogReconciliationJob{
		loader: loader,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "catalog_reconciliation_job"),
	}
}

// Start begins the catalog reconciliation job.
func (j *CatalogReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if err := j.loader.Reconcile(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Catalog reconciliation failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog reconciliation job started (running every minute)")
	return nil
}

// Stop stops the catalog reconciliation job.
func (j *CatalogReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog reconciliation job stopped")
}
