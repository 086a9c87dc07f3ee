package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. Creates the aggregate in CREATED status with a generated
// tracking code and appends the opening audit entry, all in one transaction.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipmentCommand(kernel.NewUUID(), sender, receiver,
//	    origin, destination, packages)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command. The shipment row, its
// packages, and the CREATE log entry are persisted atomically; afterwards the
// audit trail always holds exactly one entry more than the number of
// transitions performed.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()
	aggregate, err := buildShipment(cmd.ShipmentID(), shipment.NewTrackingID(), cmd, now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	entry, err := shipment.NewCreateLog(aggregate.ID(), aggregate.CreationSnapshot(), now)
	if err != nil {
		return err
	}
	if err = uow.ShipmentLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildShipment assembles a new aggregate with its packages from the command
// data. Shared with the carrier variant, which supplies the carrier-assigned
// tracking code instead of a generated one.
func buildShipment(
	shipmentID kernel.UUID,
	trackingID shipment.TrackingID,
	cmd CreateShipmentCommand,
	now time.Time,
) (*shipment.Shipment, error) {
	aggregate, err := shipment.NewShipment(
		shipmentID,
		trackingID,
		shipment.PaymentPending,
		cmd.Sender(),
		cmd.Receiver(),
		cmd.Origin(),
		cmd.Destination(),
		nil,
		now,
	)
	if err != nil {
		return nil, err
	}

	for _, spec := range cmd.Packages() {
		pkg, pkgErr := shipment.NewPackage(
			kernel.NewUUID(), shipmentID, spec.Weight, spec.Dimensions, spec.Type)
		if pkgErr != nil {
			return nil, pkgErr
		}
		if err = aggregate.AddPackage(pkg); err != nil {
			return nil, err
		}
	}

	return aggregate, nil
}
