package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/shipment"
)

// TransitionShipmentCommandHandler handles lifecycle transitions. The
// aggregate decides whether the move is legal; an illegal transition is
// rejected before anything is written and leaves both the shipment and its
// audit trail untouched.
type TransitionShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewTransitionShipmentCommandHandler creates a handler for shipment
// lifecycle transitions.
func NewTransitionShipmentCommandHandler(uowFactory ShipmentUoWFactory) TransitionShipmentCommandHandler {
	return TransitionShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the shipment, applies the transition, and persists the status
// change together with its UPDATE log entry in one transaction. The update
// carries the optimistic version check, so of two racing transitions from the
// same loaded state exactly one commits; the loser gets a version conflict.
func (h *TransitionShipmentCommandHandler) Handle(ctx context.Context, cmd TransitionShipmentCommand) error {
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

	now := time.Now()
	snapshot, err := aggregate.TransitionTo(cmd.Target(), now)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := shipment.NewUpdateLog(aggregate.ID(), snapshot, now)
	if err != nil {
		return err
	}
	if err = uow.ShipmentLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
