package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database together with its packages.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves lifecycle changes to an existing shipment. The write is
// guarded by an optimistic version check: the row is only touched when its
// stored version still matches the version the aggregate was loaded with,
// and the version is bumped in the same statement. Tracking code, addresses,
// parties, and packages are immutable and never part of the update set.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":      dto.Status,
			"status_date": dto.StatusDate,
			"payment":     dto.Payment,
			"carrier_id":  dto.CarrierID,
			"version":     dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var exists int64
		if err := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
			Where("id = ?", dto.ID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("shipment",
			fmt.Errorf("stored version no longer matches loaded version %d", dto.Version))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment with its packages by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).Preload("Packages").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingID retrieves a shipment with its packages by tracking code.
func (r *GormShipmentRepository) GetByTrackingID(
	ctx context.Context,
	trackingID shipment.TrackingID,
) (*shipment.Shipment, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).Preload("Packages").
		First(&dto, "tracking_id = ?", trackingID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingID", trackingID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all shipments in a non-terminal state.
func (r *GormShipmentRepository) GetAllActive(ctx context.Context) ([]*shipment.Shipment, error) {
	terminal := []string{
		shipment.Delivered.String(),
		shipment.Returned.String(),
		shipment.Cancelled.String(),
	}

	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).Preload("Packages").
		Find(&dtos, "status NOT IN ?", terminal).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

// Delete removes a shipment and its packages. Audit log rows reference the
// shipment by ID only and are retained, so the trail outlives the aggregate.
func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	tx := r.db.WithContext(ctx)
	if err := tx.Delete(&PackageDTO{}, "shipment_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := tx.Delete(&ShipmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", id.String())
	}

	return nil
}
