package queries_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/adapters/out/postgres/shipmentrepo"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	getHandler   queries.GetShipmentQueryHandler
	trackHandler queries.TrackShipmentQueryHandler
	repo         *shipmentrepo.GormShipmentRepository
	logs         *shipmentrepo.GormShipmentLogRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.PackageDTO{},
		&shipmentrepo.LogDTO{},
	))

	suite.getHandler = queries.NewGetShipmentQueryHandler(db)
	suite.trackHandler = queries.NewTrackShipmentQueryHandler(db, "https://shiptrack.example.com")
	suite.repo = shipmentrepo.NewGormShipmentRepository(db, noopTracker{})
	suite.logs = shipmentrepo.NewGormShipmentLogRepository(db)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE shipments, packages, shipment_logs").Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetShipment_FullReadModel() {
	ctx := context.Background()

	s := suite.seedShipment(ctx, shipment.PickedUp)

	query, err := queries.NewGetShipmentQuery(s.ID())
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(s.ID(), resp.ID)
	suite.Equal(s.TrackingID().String(), resp.TrackingID)
	suite.Equal("PICKED_UP", resp.Status)
	suite.Equal("PENDING", resp.Payment)
	suite.Equal("Maria Lopez", resp.SenderName)
	suite.Equal("Juan Perez", resp.ReceiverName)
	suite.Equal("Buenos Aires", resp.OriginCity)
	suite.Equal("Rosario", resp.DestCity)
	suite.Equal(1, resp.Version)
	suite.Len(resp.Packages, 2)

	suite.Require().Len(resp.Logs, 2)
	suite.Equal("CREATE", resp.Logs[0].Action)
	suite.Equal("CREATED", resp.Logs[0].Status)
	suite.Equal("UPDATE", resp.Logs[1].Action)
	suite.Equal("CREATED", resp.Logs[1].From)
	suite.Equal("PICKED_UP", resp.Logs[1].To)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetShipment_NotFound() {
	query, err := queries.NewGetShipmentQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetShipment_InvalidQuery() {
	invalid := queries.GetShipmentQuery{}
	_, err := suite.getHandler.Handle(context.Background(), invalid)
	suite.Require().ErrorIs(err, queries.ErrGetShipmentQueryIsNotConstructed)
}

func (suite *QueryHandlersIntegrationTestSuite) TestTrackShipment_TimelineAndURL() {
	ctx := context.Background()

	s := suite.seedShipment(ctx, shipment.InTransit)

	query, err := queries.NewTrackShipmentQuery(s.TrackingID().String())
	suite.Require().NoError(err)

	resp, err := suite.trackHandler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(s.TrackingID().String(), resp.TrackingID)
	suite.Equal("IN_TRANSIT", resp.Status)
	suite.Equal(
		"https://shiptrack.example.com/tracking?tracking_id="+s.TrackingID().String(),
		resp.TrackingURL)
	suite.Require().Len(resp.Timeline, 2)
	suite.Equal("CREATE", resp.Timeline[0].Action)
}

func (suite *QueryHandlersIntegrationTestSuite) TestTrackShipment_UnknownCode() {
	query, err := queries.NewTrackShipmentQuery("TRK-MISSING1")
	suite.Require().NoError(err)

	_, err = suite.trackHandler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// seedShipment persists a shipment in the given status with two packages, a
// CREATE log entry, and one UPDATE entry when the status is past CREATED.
func (suite *QueryHandlersIntegrationTestSuite) seedShipment(
	ctx context.Context, status shipment.Status,
) *shipment.Shipment {
	id := kernel.NewUUID()
	trackingID := shipment.NewTrackingID()

	sender, err := kernel.NewParty("Maria Lopez", "27123456", "", "")
	suite.Require().NoError(err)
	receiver, err := kernel.NewParty("Juan Perez", "30987654", "", "")
	suite.Require().NoError(err)
	origin, err := kernel.NewAddress("Av. Corrientes", "1234", "", "",
		"Buenos Aires", "CABA", "C1043")
	suite.Require().NoError(err)
	destination, err := kernel.NewAddress("Calle Falsa", "742", "", "",
		"Rosario", "Santa Fe", "S2000")
	suite.Require().NoError(err)

	now := time.Now()
	s, err := shipment.RestoreShipment(id, trackingID, status, now, now,
		shipment.PaymentPending, sender, receiver, origin, destination, nil, 1)
	suite.Require().NoError(err)

	pkg1, err := shipment.NewPackage(kernel.NewUUID(), id, 2.5, nil, shipment.PackageTypeParcel)
	suite.Require().NoError(err)
	suite.Require().NoError(s.AddPackage(pkg1))
	pkg2, err := shipment.NewPackage(kernel.NewUUID(), id, 0.3, nil, shipment.PackageTypeDocument)
	suite.Require().NoError(err)
	suite.Require().NoError(s.AddPackage(pkg2))

	suite.Require().NoError(suite.repo.Add(ctx, s))

	createEntry, err := shipment.NewCreateLog(id,
		shipment.CreateSnapshot{Status: shipment.Created, TrackingID: trackingID.String()},
		now.Add(-time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.logs.Append(ctx, createEntry))

	if status != shipment.Created {
		updateEntry, updateErr := shipment.NewUpdateLog(id,
			shipment.UpdateSnapshot{From: shipment.Created, To: status}, now)
		suite.Require().NoError(updateErr)
		suite.Require().NoError(suite.logs.Append(ctx, updateEntry))
	}

	return s
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed integration tests in short mode")
	}
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
