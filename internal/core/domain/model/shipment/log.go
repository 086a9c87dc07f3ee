package shipment

import (
	"errors"
	"fmt"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrLogIsNotConstructed is returned when a Log instance was not created
// through one of the log constructors.
var ErrLogIsNotConstructed = errors.New("Log must be created via NewCreateLog, NewUpdateLog, or NewDeleteLog")

// LogAction tags an audit entry with the kind of change it records.
type LogAction string

const (
	// LogActionCreate records the birth of a shipment.
	LogActionCreate LogAction = "CREATE"
	// LogActionUpdate records a lifecycle state transition.
	LogActionUpdate LogAction = "UPDATE"
	// LogActionDelete records the terminal snapshot taken before deletion.
	LogActionDelete LogAction = "DELETE"
)

// Validate checks the action against the known set.
func (a LogAction) Validate() error {
	switch a {
	case LogActionCreate, LogActionUpdate, LogActionDelete:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a valid log action", string(a)))
	}
}

// CreateSnapshot captures what a shipment looked like at creation: its
// initial status and the tracking code assigned to it. The "before" side of
// a creation entry is empty by definition.
type CreateSnapshot struct {
	Status     Status
	TrackingID string
}

// UpdateSnapshot captures the two sides of a state transition.
type UpdateSnapshot struct {
	From Status
	To   Status
}

// DeleteSnapshot captures the shipment's identity and state as it existed
// immediately before physical deletion.
type DeleteSnapshot struct {
	Status       Status
	TrackingID   string
	PackageCount int
}

// Log is an immutable, append-only audit record owned by a shipment. Exactly
// one of the snapshot accessors is non-nil, matching the action tag. Once
// written, a log entry is never mutated or removed; the sequence of entries
// for a shipment forms its durable audit trail, ordered by date.
type Log struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	action     LogAction
	created    *CreateSnapshot
	updated    *UpdateSnapshot
	deleted    *DeleteSnapshot
	date       time.Time

	isConstructed bool
}

// NewCreateLog builds the audit entry recorded when a shipment is created.
func NewCreateLog(shipmentID kernel.UUID, snapshot CreateSnapshot, date time.Time) (*Log, error) {
	l := &Log{
		id:            kernel.NewUUID(),
		action:        LogActionCreate,
		created:       &snapshot,
		date:          date,
		isConstructed: true,
	}
	if err := l.setShipmentID(shipmentID); err != nil {
		return nil, err
	}
	if err := snapshot.Status.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}

// NewUpdateLog builds the audit entry recorded for a state transition.
// The snapshot's From and To must both be valid lifecycle states.
func NewUpdateLog(shipmentID kernel.UUID, snapshot UpdateSnapshot, date time.Time) (*Log, error) {
	l := &Log{
		id:            kernel.NewUUID(),
		action:        LogActionUpdate,
		updated:       &snapshot,
		date:          date,
		isConstructed: true,
	}
	if err := l.setShipmentID(shipmentID); err != nil {
		return nil, err
	}
	if err := errors.Join(snapshot.From.Validate(), snapshot.To.Validate()); err != nil {
		return nil, err
	}

	return l, nil
}

// NewDeleteLog builds the terminal audit entry written before a shipment is
// physically removed.
func NewDeleteLog(shipmentID kernel.UUID, snapshot DeleteSnapshot, date time.Time) (*Log, error) {
	l := &Log{
		id:            kernel.NewUUID(),
		action:        LogActionDelete,
		deleted:       &snapshot,
		date:          date,
		isConstructed: true,
	}
	if err := l.setShipmentID(shipmentID); err != nil {
		return nil, err
	}
	if err := snapshot.Status.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLog reconstructs a log entry from persistence. Exactly one snapshot
// must be non-nil and must match the action tag.
func RestoreLog(
	id kernel.UUID,
	shipmentID kernel.UUID,
	action LogAction,
	created *CreateSnapshot,
	updated *UpdateSnapshot,
	deleted *DeleteSnapshot,
	date time.Time,
) (*Log, error) {
	if err := errors.Join(id.Validate(), shipmentID.Validate(), action.Validate()); err != nil {
		return nil, err
	}

	var match bool
	switch action {
	case LogActionCreate:
		match = created != nil && updated == nil && deleted == nil
	case LogActionUpdate:
		match = updated != nil && created == nil && deleted == nil
	case LogActionDelete:
		match = deleted != nil && created == nil && updated == nil
	}
	if !match {
		return nil, errs.NewValueIsInvalidErrorWithCause("snapshot",
			fmt.Errorf("snapshot payload does not match action %s", action))
	}

	return &Log{
		id:            id,
		shipmentID:    shipmentID,
		action:        action,
		created:       created,
		updated:       updated,
		deleted:       deleted,
		date:          date,
		isConstructed: true,
	}, nil
}

// Validate ensures the Log was properly constructed.
func (l *Log) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLogIsNotConstructed
	}
	return nil
}

// ID returns the log entry identifier.
func (l *Log) ID() kernel.UUID {
	return l.id
}

// ShipmentID returns the identifier of the shipment this entry describes.
func (l *Log) ShipmentID() kernel.UUID {
	return l.shipmentID
}

// Action returns the kind of change this entry records.
func (l *Log) Action() LogAction {
	return l.action
}

// CreateSnapshot returns the creation payload, or nil for other actions.
func (l *Log) CreateSnapshot() *CreateSnapshot {
	return l.created
}

// UpdateSnapshot returns the transition payload, or nil for other actions.
func (l *Log) UpdateSnapshot() *UpdateSnapshot {
	return l.updated
}

// DeleteSnapshot returns the deletion payload, or nil for other actions.
func (l *Log) DeleteSnapshot() *DeleteSnapshot {
	return l.deleted
}

// Date returns when the recorded change happened.
func (l *Log) Date() time.Time {
	return l.date
}

func (l *Log) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	l.shipmentID = shipmentID
	return nil
}
