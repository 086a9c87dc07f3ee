package commands_test

import (
	"context"
	"errors"
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByTrackingID(
	_ context.Context, _ shipment.TrackingID,
) (*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockShipmentRepository) GetAllActive(_ context.Context) ([]*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockShipmentLogRepository struct{ mock.Mock }

func (m *MockShipmentLogRepository) Append(ctx context.Context, entry *shipment.Log) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockShipmentLogRepository) ListByShipment(
	_ context.Context, _ kernel.UUID,
) ([]*shipment.Log, error) {
	return nil, errors.New("not implemented in mock")
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockShipmentUoW) ShipmentLogRepository() ports.ShipmentLogRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentLogRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockCarrierGateway struct{ mock.Mock }

func (m *MockCarrierGateway) CreateOrder(
	ctx context.Context,
	s *shipment.Shipment,
	opts ports.CarrierCreateOptions,
) (ports.CarrierOrder, error) {
	args := m.Called(ctx, s, opts)
	return args.Get(0).(ports.CarrierOrder), args.Error(1)
}

// newTestCreateCommand builds a valid creation command with two packages.
func newTestCreateCommand(t *testing.T, shipmentID kernel.UUID) commands.CreateShipmentCommand {
	t.Helper()

	sender, err := kernel.NewParty("Maria Lopez", "27123456", "+54 11 4000 1000", "maria@example.com")
	require.NoError(t, err)
	receiver, err := kernel.NewParty("Juan Perez", "30987654", "+54 11 4000 2000", "juan@example.com")
	require.NoError(t, err)

	origin, err := kernel.NewAddress("Av. Corrientes", "1234", "2", "B",
		"Buenos Aires", "CABA", "C1043")
	require.NoError(t, err)
	destination, err := kernel.NewAddress("Calle Falsa", "742", "", "",
		"Rosario", "Santa Fe", "S2000")
	require.NoError(t, err)

	cmd, err := commands.NewCreateShipmentCommand(shipmentID, sender, receiver,
		origin, destination, []commands.PackageSpec{
			{Weight: 2.5, Dimensions: &shipment.Dimensions{Height: 10, Width: 20, Length: 30}},
			{Weight: 0.3, Type: shipment.PackageTypeDocument},
		})
	require.NoError(t, err)

	return cmd
}
