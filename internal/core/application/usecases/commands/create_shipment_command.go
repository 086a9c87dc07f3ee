package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrPackagesAreRequired = errors.New("at least one package is required")
)

// PackageSpec describes one physical piece of a new shipment before the
// aggregate exists. Dimensions are optional; an empty type defaults to parcel
// at construction time.
type PackageSpec struct {
	Weight     float64
	Dimensions *shipment.Dimensions
	Type       shipment.PackageType
}

// CreateShipmentCommand represents a request to register a new shipment.
// Carries the full initial state: both parties, both addresses, and the
// package list. The tracking code is generated by the handler.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, sender, receiver,
//	    origin, destination, packages)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	sender      kernel.Party
	receiver    kernel.Party
	origin      kernel.Address
	destination kernel.Address
	packages    []PackageSpec

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates the identifier, both parties, both addresses, and that at least
// one package with a positive weight is present.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	sender kernel.Party,
	receiver kernel.Party,
	origin kernel.Address,
	destination kernel.Address,
	packages []PackageSpec,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setParties(sender, receiver),
		cmd.setAddresses(origin, destination),
		cmd.setPackages(packages),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Sender returns the dispatching party.
func (c CreateShipmentCommand) Sender() kernel.Party {
	return c.sender
}

// Receiver returns the receiving party.
func (c CreateShipmentCommand) Receiver() kernel.Party {
	return c.receiver
}

// Origin returns the pickup address.
func (c CreateShipmentCommand) Origin() kernel.Address {
	return c.origin
}

// Destination returns the delivery address.
func (c CreateShipmentCommand) Destination() kernel.Address {
	return c.destination
}

// Packages returns the package specifications.
func (c CreateShipmentCommand) Packages() []PackageSpec {
	return c.packages
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setParties(sender, receiver kernel.Party) error {
	if err := errors.Join(sender.Validate(), receiver.Validate()); err != nil {
		return err
	}

	c.sender = sender
	c.receiver = receiver
	return nil
}

func (c *CreateShipmentCommand) setAddresses(origin, destination kernel.Address) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}

	c.origin = origin
	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setPackages(packages []PackageSpec) error {
	if len(packages) == 0 {
		return ErrPackagesAreRequired
	}
	for _, spec := range packages {
		if spec.Weight <= 0 {
			return errs.NewValueIsInvalidError("weight")
		}
	}

	c.packages = packages
	return nil
}
