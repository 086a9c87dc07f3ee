package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/shipment"
)

// CarrierOrder is the result of registering a shipment with the external
// carrier: the carrier-assigned tracking number plus the raw response text
// kept for diagnostics.
type CarrierOrder struct {
	TrackingNumber string
	RawResponse    string
}

// CarrierCreateOptions tunes how a shipment order is registered with the
// carrier.
type CarrierCreateOptions struct {
	// ConfirmRetrieval finalizes the order immediately with the carrier.
	// When false the order stays in the carrier's own holding queue and
	// needs a separate confirmation step on their side.
	ConfirmRetrieval bool

	// CompanyInitiated marks the order as dispatched by the company rather
	// than picked up at the caller's address. The gateway then replaces the
	// whole origin block with the configured company origin; this is a hard
	// business rule, not a default.
	CompanyInitiated bool

	// RemitNumber overrides the generated remit/reference number.
	RemitNumber string
}

// CarrierGateway registers shipment orders with the external carrier's web
// service. Implementations normalize every transport, vendor, and parse
// failure into a typed error; they never panic across this boundary.
//
// There is no retry or idempotency guarantee behind this interface: each call
// makes the carrier register a new order, so a blind retry after a timeout
// can create an uncorrelated duplicate on the carrier side.
type CarrierGateway interface {
	CreateOrder(ctx context.Context, s *shipment.Shipment, opts CarrierCreateOptions) (CarrierOrder, error)
}
