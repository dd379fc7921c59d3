package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StalledShipmentJob periodically reports shipments that are still in Created
// status. A healthy order-to-cash saga plans a shipment in the same run that
// creates it, so a lingering Created shipment means the saga was abandoned
// between the two steps.
type StalledShipmentJob struct {
	uowFactory ports.TransportUnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStalledShipmentJob creates a job that sweeps for unplanned shipments
// once a minute.
func NewStalledShipmentJob(uowFactory ports.TransportUnitOfWorkFactory, logger *slog.Logger) *StalledShipmentJob {
	return &StalledShipmentJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stalled_shipment_job"),
	}
}

// Start begins the stalled shipment sweep.
func (j *StalledShipmentJob) Start() error {
	_, err := j.cron.AddFunc("30 * * * * *", func() {
		ctx := context.Background()

		shipments, err := j.uowFactory.Create().ShipmentRepository().GetAllInStatus(ctx, shipment.Created)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stalled shipment sweep failed", "error", err)
			return
		}

		if len(shipments) == 0 {
			return
		}

		ids := make([]string, 0, len(shipments))
		for _, s := range shipments {
			ids = append(ids, s.ID().String())
		}
		j.logger.WarnContext(ctx, "Shipments created but never planned",
			"count", len(shipments), "ids", ids)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stalled shipment job started (running every minute)")
	return nil
}

// Stop stops the stalled shipment sweep.
func (j *StalledShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stalled shipment job stopped")
}
