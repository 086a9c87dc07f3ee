package queries

import (
	"errors"
	"time"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery retrieves the public tracking view of a shipment by its
// tracking code: current status plus the status timeline. This is the query
// behind the tracking link handed to receivers.
type TrackShipmentQuery struct {
	trackingID string

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a tracking query for the given code.
func NewTrackShipmentQuery(trackingID string) (TrackShipmentQuery, error) {
	if trackingID == "" {
		return TrackShipmentQuery{}, errs.NewValueIsRequiredError("trackingID")
	}

	return TrackShipmentQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackingID returns the requested tracking code.
func (q TrackShipmentQuery) TrackingID() string {
	return q.trackingID
}

// TrackShipmentQueryResponse is the public tracking read model. TrackingURL
// is the canonical link for this shipment, the one downstream label and QR
// generators embed.
type TrackShipmentQueryResponse struct {
	TrackingID  string
	Status      string
	StatusDate  time.Time
	TrackingURL string
	Timeline    []LogResponse
}
