package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"shiptrack/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleShipmentJob *StaleShipmentJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleShipmentJob: NewStaleShipmentJob(uowFactory, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleShipmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale shipment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleShipmentJob.Stop()
}
