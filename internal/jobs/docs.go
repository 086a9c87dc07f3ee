// Package jobs provides scheduled background tasks for the shipment tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the shipment lifecycle.
//
// # Available Jobs
//
// 1. StaleShipmentJob - Runs every minute to report shipments stuck in a
// non-terminal state beyond the configured threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, 24*time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The stale shipment scan only reads; scan failures are logged and the next
// tick retries from scratch.
package jobs
