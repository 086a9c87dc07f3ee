// Package queries contains read operations over the shipment store.
// Implements the query side of the CQRS architecture: handlers read straight
// off the database connection and return flat response structures, bypassing
// the aggregate reconstruction used by the write side.
package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment with its packages and full audit
// trail by identifier.
//
// Example:
//
//	query, err := NewGetShipmentQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetShipmentQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetShipmentQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for one shipment.
func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment identifier.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// GetShipmentQueryResponse is the read model for one shipment: header data,
// both parties and addresses flattened, the package list, and the audit trail
// in date order.
type GetShipmentQueryResponse struct {
	ID           kernel.UUID
	TrackingID   string
	Status       string
	StatusDate   time.Time
	CreatedAt    time.Time
	Payment      string
	SenderName   string
	ReceiverName string
	OriginCity   string
	DestCity     string
	Version      int
	Packages     []PackageResponse
	Logs         []LogResponse
}

// PackageResponse is the read model for one package.
type PackageResponse struct {
	ID     kernel.UUID
	Weight float64
	Type   string
}

// LogResponse is one audit trail entry. From and To are only set for UPDATE
// entries; Status reflects the recorded state for CREATE and DELETE entries.
type LogResponse struct {
	Action string
	Status string
	From   string
	To     string
	Date   time.Time
}
