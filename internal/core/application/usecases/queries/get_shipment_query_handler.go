package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// snapshotColumn carries the union of all stored snapshot payload fields;
// which of them are set depends on the row's action tag.
type snapshotColumn struct {
	Status     string `json:"status"`
	TrackingID string `json:"tracking_id"`
	From       string `json:"from"`
	To         string `json:"to"`
}

// GetShipmentQueryHandler retrieves one shipment with packages and audit
// trail from the database.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no shipment
// row exists for the identifier; the audit trail may still exist for deleted
// shipments but is not reachable through this query.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp, err := h.loadShipment(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	if resp.Packages, err = h.loadPackages(ctx, query.ShipmentID()); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if resp.Logs, err = loadLogs(ctx, h.db, query.ShipmentID()); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return resp, nil
}

func (h GetShipmentQueryHandler) loadShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) (GetShipmentQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			status,
			status_date,
			created_at,
			payment,
			sender_name,
			receiver_name,
			origin_city,
			destination_city,
			version
		FROM shipments
		WHERE id = ?
	`, shipmentID.Bytes()).Row()

	var resp GetShipmentQueryResponse
	var rawID uuid.UUID
	err := row.Scan(
		&rawID,
		&resp.TrackingID,
		&resp.Status,
		&resp.StatusDate,
		&resp.CreatedAt,
		&resp.Payment,
		&resp.SenderName,
		&resp.ReceiverName,
		&resp.OriginCity,
		&resp.DestCity,
		&resp.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", shipmentID.String())
		}
		return GetShipmentQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(rawID[:]); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return resp, nil
}

func (h GetShipmentQueryHandler) loadPackages(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]PackageResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, weight, package_type
		FROM packages
		WHERE shipment_id = ?
		ORDER BY id
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]PackageResponse, 0)
	for rows.Next() {
		var pkg PackageResponse
		var rawID uuid.UUID

		if err = rows.Scan(&rawID, &pkg.Weight, &pkg.Type); err != nil {
			return nil, err
		}
		if pkg.ID, err = kernel.UUIDFromBytes(rawID[:]); err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}

	return packages, rows.Err()
}

// loadLogs reads the audit trail in date order and flattens each snapshot
// payload into the response shape. Shared with the tracking query.
func loadLogs(ctx context.Context, db *gorm.DB, shipmentID kernel.UUID) ([]LogResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT action, snapshot, date
		FROM shipment_logs
		WHERE shipment_id = ?
		ORDER BY date ASC
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]LogResponse, 0)
	for rows.Next() {
		var entry LogResponse
		var rawSnapshot string
		var date time.Time

		if err = rows.Scan(&entry.Action, &rawSnapshot, &date); err != nil {
			return nil, err
		}

		var snap snapshotColumn
		if err = json.Unmarshal([]byte(rawSnapshot), &snap); err != nil {
			return nil, err
		}

		entry.Status = snap.Status
		entry.From = snap.From
		entry.To = snap.To
		entry.Date = date
		logs = append(logs, entry)
	}

	return logs, rows.Err()
}
