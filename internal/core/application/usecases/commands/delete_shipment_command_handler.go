package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/shipment"
)

// DeleteShipmentCommandHandler handles shipment removal. The shipment and its
// packages go; the audit trail stays, closed by a final DELETE entry that
// records what the shipment looked like at the moment of removal.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the terminal DELETE log entry and removes the shipment with
// its packages in one transaction. A missing shipment surfaces as an
// ObjectNotFoundError from the load; nothing is written in that case.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	entry, err := shipment.NewDeleteLog(aggregate.ID(), aggregate.DeletionSnapshot(), time.Now())
	if err != nil {
		return err
	}
	if err = uow.ShipmentLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	if err = shipmentRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
