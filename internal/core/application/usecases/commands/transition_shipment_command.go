package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/guard"
)

var ErrTransitionShipmentCommandIsNotConstructed = errors.New(
	"TransitionShipmentCommand must be created via NewTransitionShipmentCommand constructor",
)

// TransitionShipmentCommand represents a request to move a shipment to a new
// lifecycle status.
//
// Example:
//
//	cmd, err := NewTransitionShipmentCommand(shipmentID, shipment.PickedUp)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewTransitionShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type TransitionShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	target     shipment.Status

	guard guard.ConstructorGuard
}

// NewTransitionShipmentCommand creates a command to transition a shipment.
// Validates the identifier and that the target is a known status; whether the
// transition is allowed from the current state is decided by the aggregate.
func NewTransitionShipmentCommand(
	shipmentID kernel.UUID,
	target shipment.Status,
) (TransitionShipmentCommand, error) {
	cmd := TransitionShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to transition.
func (c TransitionShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Target returns the requested lifecycle status.
func (c TransitionShipmentCommand) Target() shipment.Status {
	return c.target
}

func (c *TransitionShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *TransitionShipmentCommand) setTarget(target shipment.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
