// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. It implements the repository pattern for the
// shipment aggregate and its append-only audit log, converting between
// domain entities and their relational representation.
package shipmentrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Tracking codes are unique; status is indexed for the active
// shipment scans; version backs the optimistic concurrency check.
type ShipmentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingID  string     `gorm:"uniqueIndex;not null"`
	Status      string     `gorm:"index;not null"`
	StatusDate  time.Time  `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"not null"`
	Payment     string     `gorm:"not null"`
	Sender      PartyDTO   `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver    PartyDTO   `gorm:"embedded;embeddedPrefix:receiver_"`
	Origin      AddressDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	CarrierID   *uuid.UUID `gorm:"type:uuid;index"`
	Version     int        `gorm:"not null"`

	Packages []PackageDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PartyDTO is the embedded identity snapshot of a sender or receiver.
type PartyDTO struct {
	Name       string
	NationalID string
	Phone      string
	Email      string
}

// AddressDTO is the embedded postal address of an origin or destination.
type AddressDTO struct {
	Street    string
	Number    string
	Floor     string
	Apartment string
	City      string
	State     string
	ZipCode   string
}

// PackageDTO represents one physical piece owned by a shipment. The
// shipment_id column is written at creation and never updated.
type PackageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Weight      float64   `gorm:"not null"`
	Height      *float64
	Width       *float64
	Length      *float64
	PackageType string `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "packages".
func (PackageDTO) TableName() string {
	return "packages"
}

// LogDTO represents one audit trail entry. Rows are inserted and read, never
// updated or deleted; the snapshot payload is stored as JSON keyed by the
// action tag.
type LogDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index;not null"`
	Action     string    `gorm:"not null"`
	Snapshot   string    `gorm:"type:jsonb;not null"`
	Date       time.Time `gorm:"index;not null"`
}

// TableName overrides GORM's default naming to use "shipment_logs".
func (LogDTO) TableName() string {
	return "shipment_logs"
}

type createSnapshotJSON struct {
	Status     string `json:"status"`
	TrackingID string `json:"tracking_id"`
}

type updateSnapshotJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type deleteSnapshotJSON struct {
	Status       string `json:"status"`
	TrackingID   string `json:"tracking_id"`
	PackageCount int    `json:"package_count"`
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	var carrierID *uuid.UUID
	if id := s.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	packages := make([]PackageDTO, 0, len(s.Packages()))
	for _, pkg := range s.Packages() {
		packages = append(packages, packageFromDomain(pkg))
	}

	return ShipmentDTO{
		ID:          s.ID().Bytes(),
		TrackingID:  s.TrackingID().String(),
		Status:      s.Status().String(),
		StatusDate:  s.StatusDate(),
		CreatedAt:   s.CreatedAt(),
		Payment:     string(s.Payment()),
		Sender:      partyFromDomain(s.Sender()),
		Receiver:    partyFromDomain(s.Receiver()),
		Origin:      addressFromDomain(s.Origin()),
		Destination: addressFromDomain(s.Destination()),
		CarrierID:   carrierID,
		Version:     s.Version(),
		Packages:    packages,
	}
}

func partyFromDomain(p kernel.Party) PartyDTO {
	return PartyDTO{
		Name:       p.Name(),
		NationalID: p.NationalID(),
		Phone:      p.Phone(),
		Email:      p.Email(),
	}
}

func addressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		Street:    a.Street(),
		Number:    a.Number(),
		Floor:     a.Floor(),
		Apartment: a.Apartment(),
		City:      a.City(),
		State:     a.State(),
		ZipCode:   a.ZipCode(),
	}
}

func packageFromDomain(p *shipment.Package) PackageDTO {
	dto := PackageDTO{
		ID:          p.ID().Bytes(),
		ShipmentID:  p.ShipmentID().Bytes(),
		Weight:      p.Weight(),
		PackageType: string(p.Type()),
	}
	if dims := p.Dimensions(); dims != nil {
		h, w, l := dims.Height, dims.Width, dims.Length
		dto.Height, dto.Width, dto.Length = &h, &w, &l
	}
	return dto
}

// toDomain converts a database DTO to a shipment aggregate, reconstructing
// packages and the stored version via RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := shipment.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	sender, err := partyToDomain(dto.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := partyToDomain(dto.Receiver)
	if err != nil {
		return nil, err
	}
	origin, err := addressToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}
	destination, err := addressToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrierID = &cID
	}

	s, err := shipment.RestoreShipment(
		id, trackingID, status, dto.StatusDate, dto.CreatedAt,
		shipment.PaymentStatus(dto.Payment),
		sender, receiver, origin, destination, carrierID, dto.Version,
	)
	if err != nil {
		return nil, err
	}

	for _, pkgDTO := range dto.Packages {
		pkg, pkgErr := packageToDomain(pkgDTO)
		if pkgErr != nil {
			return nil, pkgErr
		}
		if err = s.AddPackage(pkg); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func partyToDomain(dto PartyDTO) (kernel.Party, error) {
	return kernel.NewParty(dto.Name, dto.NationalID, dto.Phone, dto.Email)
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.Street, dto.Number, dto.Floor, dto.Apartment,
		dto.City, dto.State, dto.ZipCode)
}

func packageToDomain(dto PackageDTO) (*shipment.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	var dims *shipment.Dimensions
	if dto.Height != nil && dto.Width != nil && dto.Length != nil {
		dims = &shipment.Dimensions{Height: *dto.Height, Width: *dto.Width, Length: *dto.Length}
	}

	return shipment.RestorePackage(id, shipmentID, dto.Weight, dims,
		shipment.PackageType(dto.PackageType))
}

// logFromDomain converts an audit entry to its database representation,
// serializing the snapshot payload that matches the action tag.
func logFromDomain(entry *shipment.Log) (LogDTO, error) {
	var payload any
	switch entry.Action() {
	case shipment.LogActionCreate:
		snap := entry.CreateSnapshot()
		payload = createSnapshotJSON{Status: snap.Status.String(), TrackingID: snap.TrackingID}
	case shipment.LogActionUpdate:
		snap := entry.UpdateSnapshot()
		payload = updateSnapshotJSON{From: snap.From.String(), To: snap.To.String()}
	case shipment.LogActionDelete:
		snap := entry.DeleteSnapshot()
		payload = deleteSnapshotJSON{
			Status:       snap.Status.String(),
			TrackingID:   snap.TrackingID,
			PackageCount: snap.PackageCount,
		}
	default:
		return LogDTO{}, errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a valid log action", entry.Action()))
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return LogDTO{}, err
	}

	return LogDTO{
		ID:         entry.ID().Bytes(),
		ShipmentID: entry.ShipmentID().Bytes(),
		Action:     string(entry.Action()),
		Snapshot:   string(raw),
		Date:       entry.Date(),
	}, nil
}

// logToDomain converts a database DTO to an audit entry, deserializing the
// snapshot payload per action tag.
func logToDomain(dto LogDTO) (*shipment.Log, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	action := shipment.LogAction(dto.Action)

	var (
		created *shipment.CreateSnapshot
		updated *shipment.UpdateSnapshot
		deleted *shipment.DeleteSnapshot
	)

	switch action {
	case shipment.LogActionCreate:
		var raw createSnapshotJSON
		if err = json.Unmarshal([]byte(dto.Snapshot), &raw); err != nil {
			return nil, err
		}
		status, statusErr := shipment.StatusFromString(raw.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		created = &shipment.CreateSnapshot{Status: status, TrackingID: raw.TrackingID}
	case shipment.LogActionUpdate:
		var raw updateSnapshotJSON
		if err = json.Unmarshal([]byte(dto.Snapshot), &raw); err != nil {
			return nil, err
		}
		from, fromErr := shipment.StatusFromString(raw.From)
		if fromErr != nil {
			return nil, fromErr
		}
		to, toErr := shipment.StatusFromString(raw.To)
		if toErr != nil {
			return nil, toErr
		}
		updated = &shipment.UpdateSnapshot{From: from, To: to}
	case shipment.LogActionDelete:
		var raw deleteSnapshotJSON
		if err = json.Unmarshal([]byte(dto.Snapshot), &raw); err != nil {
			return nil, err
		}
		status, statusErr := shipment.StatusFromString(raw.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		deleted = &shipment.DeleteSnapshot{
			Status:       status,
			TrackingID:   raw.TrackingID,
			PackageCount: raw.PackageCount,
		}
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a valid log action", dto.Action))
	}

	return shipment.RestoreLog(id, shipmentID, action, created, updated, deleted, dto.Date)
}
