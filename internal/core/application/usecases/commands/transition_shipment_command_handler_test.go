package commands_test

import (
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// restoreTestShipment rebuilds a persisted-looking shipment in the given
// status for handler tests.
func restoreTestShipment(t *testing.T, id kernel.UUID, status shipment.Status) *shipment.Shipment {
	t.Helper()

	sender, err := kernel.NewParty("Maria Lopez", "27123456", "", "")
	require.NoError(t, err)
	receiver, err := kernel.NewParty("Juan Perez", "30987654", "", "")
	require.NoError(t, err)
	origin, err := kernel.NewAddress("Av. Corrientes", "1234", "", "",
		"Buenos Aires", "CABA", "C1043")
	require.NoError(t, err)
	destination, err := kernel.NewAddress("Calle Falsa", "742", "", "",
		"Rosario", "Santa Fe", "S2000")
	require.NoError(t, err)

	now := time.Now()
	trackingID, err := shipment.TrackingIDFromString("TRK-TEST0001")
	require.NoError(t, err)

	s, err := shipment.RestoreShipment(id, trackingID, status, now, now,
		shipment.PaymentPending, sender, receiver, origin, destination, nil, 1)
	require.NoError(t, err)
	return s
}

func TestTransitionShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionShipmentCommand(id, shipment.PickedUp)
	require.NoError(t, err)

	loaded := restoreTestShipment(t, id, shipment.Created)

	var logged *shipment.Log

	repo := new(MockShipmentRepository)
	logs := new(MockShipmentLogRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(loaded, nil).Once(),
		repo.On("Update", mock.Anything, loaded).Return(nil).Once(),
		uow.On("ShipmentLogRepository").Return(logs).Once(),
		logs.On("Append", mock.Anything, mock.AnythingOfType("*shipment.Log")).
			Run(func(args mock.Arguments) {
				logged = args.Get(1).(*shipment.Log)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, shipment.PickedUp, loaded.Status())
	require.Equal(t, shipment.LogActionUpdate, logged.Action())
	require.Equal(t, shipment.Created, logged.UpdateSnapshot().From)
	require.Equal(t, shipment.PickedUp, logged.UpdateSnapshot().To)

	repo.AssertExpectations(t)
	logs.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTransitionShipmentCommandHandler_Handle_InvalidTransition_NothingWritten(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionShipmentCommand(id, shipment.Delivered)
	require.NoError(t, err)

	// DELIVERED straight from CREATED skips the chain and must be rejected.
	loaded := restoreTestShipment(t, id, shipment.Created)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(loaded, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, shipment.ErrInvalidTransition)

	// The aggregate and its audit trail stay untouched.
	require.Equal(t, shipment.Created, loaded.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "ShipmentLogRepository")

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTransitionShipmentCommandHandler_Handle_TerminalState_Rejected(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionShipmentCommand(id, shipment.Returned)
	require.NoError(t, err)

	loaded := restoreTestShipment(t, id, shipment.Delivered)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(loaded, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	require.Equal(t, shipment.Delivered, loaded.Status())
}

func TestTransitionShipmentCommandHandler_Handle_VersionConflict_Propagates(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionShipmentCommand(id, shipment.PickedUp)
	require.NoError(t, err)

	loaded := restoreTestShipment(t, id, shipment.Created)
	conflict := errs.NewVersionIsInvalidErrorWithCause("shipment")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(loaded, nil).Once(),
		repo.On("Update", mock.Anything, loaded).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	var versionErr *errs.VersionIsInvalidError
	require.ErrorAs(t, err, &versionErr)
	uow.AssertNotCalled(t, "ShipmentLogRepository")
}

func TestTransitionShipmentCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionShipmentCommand(id, shipment.PickedUp)
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

	h := commands.NewTransitionShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	var notFoundErr *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}
