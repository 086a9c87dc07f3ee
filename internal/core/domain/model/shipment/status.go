package shipment

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for lifecycle rule violations.
// Use errors.Is to classify; the concrete error carries the from/to pair.
var ErrInvalidTransition = fmt.Errorf("invalid shipment state transition")

// Status represents the lifecycle state of a shipment. It implements a state
// machine with a forward delivery path and two exception paths:
//
//	Created ──> PickedUp ──> InTransit ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──────> Returned | Cancelled
//
// Delivered, Returned, and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned at shipment creation.
	Created

	// PickedUp indicates the carrier has collected the shipment.
	PickedUp

	// InTransit indicates the shipment is moving through the carrier network.
	InTransit

	// Delivered indicates the shipment reached its recipient. Terminal.
	Delivered

	// Returned indicates the shipment went back to its origin. Terminal.
	Returned

	// Cancelled indicates the shipment was called off. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Returned:  "RETURNED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Returned:  "RETURNED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the wire/storage representation of a status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the storage representation of the status.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned || s == Cancelled
}

// CanTransitionTo reports whether the lifecycle graph allows moving from the
// current status to target. The forward path is
// Created -> PickedUp -> InTransit -> Delivered; any non-terminal status may
// also move to Returned or Cancelled.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == Returned || target == Cancelled {
		return true
	}

	switch s {
	case Created:
		return target == PickedUp
	case PickedUp:
		return target == InTransit
	case InTransit:
		return target == Delivered
	default:
		return false
	}
}

// TransitionTo validates the transition and returns the target status.
// Returns an error wrapping ErrInvalidTransition when the lifecycle graph
// forbids the move; the current status is never mutated.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}

	return target, nil
}
