package jobs

import (
	"context"
	"log/slog"
	"time"

	"shiptrack/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleShipmentJob periodically scans for shipments stuck in a non-terminal
// state longer than the configured threshold and reports them. Reporting is
// observational only; the job never mutates shipment state.
type StaleShipmentJob struct {
	uowFactory ports.UnitOfWorkFactory
	threshold  time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleShipmentJob creates a job that flags shipments whose status has not
// moved for at least threshold.
func NewStaleShipmentJob(
	uowFactory ports.UnitOfWorkFactory,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleShipmentJob {
	return &StaleShipmentJob{
		uowFactory: uowFactory,
		threshold:  threshold,
		cron:       cron.New(),
		logger:     logger.With("component", "stale_shipment_job"),
	}
}

// Start begins the stale shipment scan, running once per minute.
func (j *StaleShipmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale shipment scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Stale shipment job started (running every minute)", "threshold", j.threshold)
	return nil
}

// Stop stops the stale shipment job.
func (j *StaleShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale shipment job stopped")
}

// run scans outside any transaction; the repository reads off the main
// connection when no transaction was begun.
func (j *StaleShipmentJob) run(ctx context.Context) error {
	repo := j.uowFactory.Create().ShipmentRepository()

	active, err := repo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-j.threshold)
	for _, s := range active {
		if s.StatusDate().After(cutoff) {
			continue
		}
		j.logger.WarnContext(ctx, "Shipment stuck in non-terminal state",
			"shipment_id", s.ID().String(),
			"tracking_id", s.TrackingID().String(),
			"status", s.Status().String(),
			"since", s.StatusDate(),
		)
	}

	return nil
}
