// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ShipmentLogRepoFactory provides access to the audit log repository within a transaction.
	ShipmentLogRepoFactory interface {
		ShipmentLogRepository() ports.ShipmentLogRepository
	}

	// ShipmentUoW manages transactions spanning the shipment aggregate and its
	// audit trail. Every lifecycle command writes through this boundary so a
	// state change and its log entry commit together or not at all.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		ShipmentLogRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)
