package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"
)

// CreateCarrierShipmentCommandHandler registers a shipment with the external
// carrier and persists it locally under the carrier-assigned tracking number.
//
// Ordering is strict: the carrier call happens first and nothing is written
// when it fails, so a failed carrier registration never leaves a local
// shipment behind. The reverse gap (carrier order created, local commit
// fails) is accepted and surfaces through the returned error.
type CreateCarrierShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gateway    ports.CarrierGateway
}

// NewCreateCarrierShipmentCommandHandler creates a handler for carrier-backed
// shipment registration.
func NewCreateCarrierShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	gateway ports.CarrierGateway,
) CreateCarrierShipmentCommandHandler {
	return CreateCarrierShipmentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle registers the order with the carrier, then persists the shipment and
// its CREATE log entry in one transaction. The returned CarrierOrder carries
// the carrier tracking number and the raw vendor response for diagnostics.
func (h *CreateCarrierShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCarrierShipmentCommand,
) (ports.CarrierOrder, error) {
	if err := cmd.Validate(); err != nil {
		return ports.CarrierOrder{}, err
	}

	creation := cmd.Creation()
	now := time.Now()

	// The draft exists only to feed the carrier request; its generated
	// tracking code is discarded in favor of the carrier's number.
	draft, err := buildShipment(creation.ShipmentID(), shipment.NewTrackingID(), creation, now)
	if err != nil {
		return ports.CarrierOrder{}, err
	}

	order, err := h.gateway.CreateOrder(ctx, draft, ports.CarrierCreateOptions{
		ConfirmRetrieval: cmd.ConfirmRetrieval(),
		CompanyInitiated: cmd.CompanyInitiated(),
		RemitNumber:      cmd.RemitNumber(),
	})
	if err != nil {
		return ports.CarrierOrder{}, err
	}

	carrierTracking, err := shipment.TrackingIDFromString(order.TrackingNumber)
	if err != nil {
		return ports.CarrierOrder{}, err
	}

	aggregate, err := buildShipment(creation.ShipmentID(), carrierTracking, creation, now)
	if err != nil {
		return ports.CarrierOrder{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ports.CarrierOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return ports.CarrierOrder{}, err
	}

	entry, err := shipment.NewCreateLog(aggregate.ID(), aggregate.CreationSnapshot(), now)
	if err != nil {
		return ports.CarrierOrder{}, err
	}
	if err = uow.ShipmentLogRepository().Append(ctx, entry); err != nil {
		return ports.CarrierOrder{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.CarrierOrder{}, err
	}

	return order, nil
}
