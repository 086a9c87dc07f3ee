package cmd

import (
	"log/slog"
	"time"

	"shiptrack/internal/adapters/out/oca"
	"shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCarrierShipmentCommandHandler() (commands.CreateCarrierShipmentCommandHandler, error) {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})

	gateway, err := c.createCarrierGateway()
	if err != nil {
		return commands.CreateCarrierShipmentCommandHandler{}, err
	}

	return commands.NewCreateCarrierShipmentCommandHandler(f, gateway), nil
}

func (c *CompositionRoot) CreateTransitionShipmentCommandHandler() commands.TransitionShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB, c.config.TrackingBaseURL)
}

func (c *CompositionRoot) CreateJobManager(staleThreshold time.Duration, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, staleThreshold, logger)
}

func (c *CompositionRoot) createCarrierGateway() (*oca.Client, error) {
	config := oca.Config{
		BaseURL:       c.config.OcaBaseURL,
		TrackingPath:  c.config.OcaTrackingPath,
		Username:      c.config.OcaUsername,
		Password:      c.config.OcaPassword,
		AccountNumber: c.config.OcaAccountNumber,
		OperativeID:   c.config.OcaOperativeID,
		CompanyOrigin: oca.CompanyOrigin{
			Street:     c.config.OcaOriginStreet,
			Number:     c.config.OcaOriginNumber,
			Floor:      c.config.OcaOriginFloor,
			Apartment:  c.config.OcaOriginApartment,
			ZipCode:    c.config.OcaOriginZipCode,
			City:       c.config.OcaOriginCity,
			State:      c.config.OcaOriginState,
			Email:      c.config.OcaOriginEmail,
			Contact:    c.config.OcaOriginContact,
			CostCenter: c.config.OcaOriginCostCenter,
		},
	}

	return oca.NewClient(config, nil, nil)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
