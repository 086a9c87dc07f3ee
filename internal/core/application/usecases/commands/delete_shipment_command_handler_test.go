package commands_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteShipmentCommandHandler_Handle_AppendsDeleteLogThenDeletes(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteShipmentCommand(id)
	require.NoError(t, err)

	loaded := restoreTestShipment(t, id, shipment.InTransit)

	var logged *shipment.Log

	repo := new(MockShipmentRepository)
	logs := new(MockShipmentLogRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(loaded, nil).Once(),
		uow.On("ShipmentLogRepository").Return(logs).Once(),
		logs.On("Append", mock.Anything, mock.AnythingOfType("*shipment.Log")).
			Run(func(args mock.Arguments) {
				logged = args.Get(1).(*shipment.Log)
			}).Return(nil).Once(),
		repo.On("Delete", mock.Anything, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, shipment.LogActionDelete, logged.Action())
	require.Equal(t, shipment.InTransit, logged.DeleteSnapshot().Status)
	require.Equal(t, "TRK-TEST0001", logged.DeleteSnapshot().TrackingID)

	repo.AssertExpectations(t)
	logs.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteShipmentCommandHandler_Handle_NotFound_NothingWritten(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteShipmentCommand(id)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("shipment", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	var notFoundErr *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	uow.AssertNotCalled(t, "ShipmentLogRepository")
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteShipmentCommand{} // not constructed properly
	h := commands.NewDeleteShipmentCommandHandler(new(MockShipmentUoWFactory))
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrDeleteShipmentCommandIsNotConstructed)
}
