package shipment

import (
	"errors"
	"fmt"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// ErrPackageBelongsToOtherShipment is returned when attaching a package whose
// parent shipment id does not match this shipment.
var ErrPackageBelongsToOtherShipment = errors.New("package belongs to a different shipment")

// Shipment is the aggregate root of the delivery lifecycle. It owns its
// packages exclusively and is mutated only through validated lifecycle
// transitions.
//
// Invariants:
//   - The tracking code is assigned once, at creation, and never changes.
//   - Sender and receiver are identity snapshots, not live references.
//   - Every accepted transition is paired with exactly one audit log entry;
//     pairing is enforced by the transition command running both writes in a
//     single transaction.
//   - The version field supports optimistic concurrency: the persistence
//     adapter refuses an update whose version does not match the stored row,
//     so two racing transitions can never both apply.
type Shipment struct {
	id          kernel.UUID
	trackingID  TrackingID
	status      Status
	statusDate  time.Time
	createdAt   time.Time
	payment     PaymentStatus
	sender      kernel.Party
	receiver    kernel.Party
	origin      kernel.Address
	destination kernel.Address
	packages    []*Package
	carrierID   *kernel.UUID
	version     int

	isConstructed bool
}

// NewShipment creates a shipment in Created status. The tracking code is
// fixed here for the lifetime of the aggregate. carrierID is optional and
// references an assigned carrier when the shipment was registered through
// one.
func NewShipment(
	id kernel.UUID,
	trackingID TrackingID,
	payment PaymentStatus,
	sender kernel.Party,
	receiver kernel.Party,
	origin kernel.Address,
	destination kernel.Address,
	carrierID *kernel.UUID,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Created,
		statusDate:    now,
		createdAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingID(trackingID),
		s.setPayment(payment),
		s.setSender(sender),
		s.setReceiver(receiver),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setCarrierID(carrierID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence with its stored
// status, timestamps, and version.
func RestoreShipment(
	id kernel.UUID,
	trackingID TrackingID,
	status Status,
	statusDate time.Time,
	createdAt time.Time,
	payment PaymentStatus,
	sender kernel.Party,
	receiver kernel.Party,
	origin kernel.Address,
	destination kernel.Address,
	carrierID *kernel.UUID,
	version int,
) (*Shipment, error) {
	s, err := NewShipment(id, trackingID, payment, sender, receiver, origin, destination, carrierID, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a valid version", version))
	}

	s.status = status
	s.statusDate = statusDate
	s.version = version
	return s, nil
}

// Validate ensures the Shipment was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingID returns the immutable tracking code.
func (s *Shipment) TrackingID() TrackingID {
	return s.trackingID
}

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// StatusDate returns when the current state was entered.
func (s *Shipment) StatusDate() time.Time {
	return s.statusDate
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// Payment returns the payment status.
func (s *Shipment) Payment() PaymentStatus {
	return s.payment
}

// Sender returns the sender identity snapshot.
func (s *Shipment) Sender() kernel.Party {
	return s.sender
}

// Receiver returns the receiver identity snapshot.
func (s *Shipment) Receiver() kernel.Party {
	return s.receiver
}

// Origin returns the pickup address.
func (s *Shipment) Origin() kernel.Address {
	return s.origin
}

// Destination returns the delivery address.
func (s *Shipment) Destination() kernel.Address {
	return s.destination
}

// Packages returns the owned packages in insertion order.
func (s *Shipment) Packages() []*Package {
	return s.packages
}

// CarrierID returns the assigned carrier's identifier, or nil.
func (s *Shipment) CarrierID() *kernel.UUID {
	return s.carrierID
}

// Version returns the optimistic concurrency version loaded from storage.
func (s *Shipment) Version() int {
	return s.version
}

// AddPackage attaches a package to the aggregate. The package must already
// name this shipment as its parent; ownership never moves between shipments.
func (s *Shipment) AddPackage(p *Package) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.ShipmentID().IsEqual(s.id) {
		return ErrPackageBelongsToOtherShipment
	}

	s.packages = append(s.packages, p)
	return nil
}

// TransitionTo moves the shipment to target per the lifecycle graph, stamping
// statusDate with now. On success it returns the before/after snapshot the
// caller must persist as the paired audit entry. On failure the shipment is
// left untouched and the error wraps ErrInvalidTransition.
func (s *Shipment) TransitionTo(target Status, now time.Time) (UpdateSnapshot, error) {
	previous := s.status
	next, err := s.status.TransitionTo(target)
	if err != nil {
		return UpdateSnapshot{}, err
	}

	s.status = next
	s.statusDate = now
	return UpdateSnapshot{From: previous, To: next}, nil
}

// MarkPaid records payment receipt.
func (s *Shipment) MarkPaid() {
	s.payment = PaymentPaid
}

// CreationSnapshot returns the payload for the CREATE audit entry.
func (s *Shipment) CreationSnapshot() CreateSnapshot {
	return CreateSnapshot{
		Status:     s.status,
		TrackingID: s.trackingID.String(),
	}
}

// DeletionSnapshot returns the payload for the terminal DELETE audit entry,
// capturing the shipment as it exists immediately before removal.
func (s *Shipment) DeletionSnapshot() DeleteSnapshot {
	return DeleteSnapshot{
		Status:       s.status,
		TrackingID:   s.trackingID.String(),
		PackageCount: len(s.packages),
	}
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingID(trackingID TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	s.trackingID = trackingID
	return nil
}

func (s *Shipment) setPayment(payment PaymentStatus) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	s.payment = payment
	return nil
}

func (s *Shipment) setSender(sender kernel.Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	s.sender = sender
	return nil
}

func (s *Shipment) setReceiver(receiver kernel.Party) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	s.receiver = receiver
	return nil
}

func (s *Shipment) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setCarrierID(carrierID *kernel.UUID) error {
	if carrierID == nil {
		return nil
	}
	if err := carrierID.Validate(); err != nil {
		return err
	}
	s.carrierID = carrierID
	return nil
}
