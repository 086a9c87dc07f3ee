package shipmentrepo

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GormShipmentLogRepository implements ShipmentLogRepository using GORM.
// The audit trail is append-only: the type exposes no update or delete.
type GormShipmentLogRepository struct {
	db *gorm.DB
}

// NewGormShipmentLogRepository creates a new GORM shipment log repository.
func NewGormShipmentLogRepository(db *gorm.DB) *GormShipmentLogRepository {
	return &GormShipmentLogRepository{db: db}
}

// Append writes one new audit entry.
func (r *GormShipmentLogRepository) Append(ctx context.Context, entry *shipment.Log) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := logFromDomain(entry)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByShipment returns all entries for a shipment ordered by date ascending,
// creation entry first.
func (r *GormShipmentLogRepository) ListByShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.Log, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LogDTO
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&dtos, "shipment_id = ?", shipmentID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	logs := make([]*shipment.Log, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := logToDomain(dto)
		if err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}

	return logs, nil
}
