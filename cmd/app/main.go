package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"shiptrack/cmd"
	httpin "shiptrack/internal/adapters/in/http"
	"shiptrack/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleThreshold = 24 * time.Hour

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := app.CreateJobManager(staleThreshold(configs), slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		TrackingBaseURL:     goDotEnvVariable("TRACKING_BASE_URL"),
		StaleThreshold:      goDotEnvVariable("STALE_THRESHOLD"),
		OcaBaseURL:          goDotEnvVariable("OCA_BASE_URL"),
		OcaTrackingPath:     goDotEnvVariable("OCA_TRACKING_PATH"),
		OcaUsername:         goDotEnvVariable("OCA_USERNAME"),
		OcaPassword:         goDotEnvVariable("OCA_PASSWORD"),
		OcaAccountNumber:    goDotEnvVariable("OCA_ACCOUNT_NUMBER"),
		OcaOperativeID:      goDotEnvVariable("OCA_OPERATIVE_ID"),
		OcaOriginStreet:     goDotEnvVariable("OCA_ORIGIN_STREET"),
		OcaOriginNumber:     goDotEnvVariable("OCA_ORIGIN_NUMBER"),
		OcaOriginFloor:      goDotEnvVariable("OCA_ORIGIN_FLOOR"),
		OcaOriginApartment:  goDotEnvVariable("OCA_ORIGIN_APARTMENT"),
		OcaOriginZipCode:    goDotEnvVariable("OCA_ORIGIN_ZIP_CODE"),
		OcaOriginCity:       goDotEnvVariable("OCA_ORIGIN_CITY"),
		OcaOriginState:      goDotEnvVariable("OCA_ORIGIN_STATE"),
		OcaOriginEmail:      goDotEnvVariable("OCA_ORIGIN_EMAIL"),
		OcaOriginContact:    goDotEnvVariable("OCA_ORIGIN_CONTACT"),
		OcaOriginCostCenter: goDotEnvVariable("OCA_ORIGIN_COST_CENTER"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func staleThreshold(configs cmd.Config) time.Duration {
	if configs.StaleThreshold == "" {
		return defaultStaleThreshold
	}

	threshold, err := time.ParseDuration(configs.StaleThreshold)
	if err != nil {
		log.Fatalf("Error parsing STALE_THRESHOLD: %v", err)
	}
	return threshold
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.PackageDTO{},
		&shipmentrepo.LogDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	carrierHandler, err := app.CreateCreateCarrierShipmentCommandHandler()
	if err != nil {
		log.Fatalf("Error building carrier gateway: %v", err)
	}

	server := httpin.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		carrierHandler,
		app.CreateTransitionShipmentCommandHandler(),
		app.CreateDeleteShipmentCommandHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateTrackShipmentQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
