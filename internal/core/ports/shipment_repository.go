// Package ports defines the contracts between the domain core and
// infrastructure adapters: persistence repositories, the unit of work
// transaction boundary, and the outbound carrier gateway.
package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Implementations must honor the domain invariants: the tracking
// code and package ownership columns are written once and never updated, and
// Update applies an optimistic version check so two racing transitions can
// never both succeed against the same prior state.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate together with its packages.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists lifecycle changes (status, status date, payment) to an
	// existing shipment. The stored row's version must match the aggregate's
	// loaded version; on mismatch the update is refused with a
	// version-conflict error and no row is touched.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment with its packages by identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingID retrieves a shipment with its packages by its public
	// tracking code.
	GetByTrackingID(ctx context.Context, trackingID shipment.TrackingID) (*shipment.Shipment, error)

	// GetAllActive retrieves all shipments in a non-terminal state.
	GetAllActive(ctx context.Context) ([]*shipment.Shipment, error)

	// Delete removes the shipment and cascades to its packages. Audit log
	// entries are retained; the terminal DELETE entry must already have been
	// appended in the same transaction.
	Delete(ctx context.Context, id kernel.UUID) error
}

// ShipmentLogRepository defines the persistence contract for the append-only
// audit trail. There is deliberately no update or delete operation: log rows
// are immutable once written.
type ShipmentLogRepository interface {
	// Append writes one new audit entry.
	Append(ctx context.Context, entry *shipment.Log) error

	// ListByShipment returns all entries for a shipment ordered by date
	// ascending, creation entry first.
	ListByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.Log, error)
}
