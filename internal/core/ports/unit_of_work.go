package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. A state transition
// and its audit log append are one atomic unit: both repositories obtained
// from the same UnitOfWork share one transaction, so either both writes
// become durable or neither does.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction.
	ShipmentRepository() ShipmentRepository

	// ShipmentLogRepository returns a ShipmentLogRepository bound to the
	// current transaction.
	ShipmentLogRepository() ShipmentLogRepository
}
