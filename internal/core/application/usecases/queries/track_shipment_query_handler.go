package queries

import (
	"context"
	"database/sql"
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackShipmentQueryHandler serves the public tracking view. The base URL is
// fixed at construction and defines where the returned tracking links point.
type TrackShipmentQueryHandler struct {
	db      *gorm.DB
	baseURL string
}

// NewTrackShipmentQueryHandler creates a handler for tracking queries.
func NewTrackShipmentQueryHandler(db *gorm.DB, baseURL string) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db, baseURL: baseURL}
}

// Handle resolves the tracking code to the shipment's current status and its
// timeline. Unknown codes surface as ObjectNotFoundError.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, tracking_id, status, status_date
		FROM shipments
		WHERE tracking_id = ?
	`, query.TrackingID()).Row()

	var resp TrackShipmentQueryResponse
	var rawID uuid.UUID
	err := row.Scan(&rawID, &resp.TrackingID, &resp.Status, &resp.StatusDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackShipmentQueryResponse{}, errs.NewObjectNotFoundError(
				"trackingID", query.TrackingID())
		}
		return TrackShipmentQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	trackingID, err := shipment.TrackingIDFromString(resp.TrackingID)
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}
	resp.TrackingURL = shipment.TrackingURL(h.baseURL, trackingID)

	if resp.Timeline, err = loadLogs(ctx, h.db, shipmentID); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	return resp, nil
}
