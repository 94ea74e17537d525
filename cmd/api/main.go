package main

import (
	"fmt"
	"time"

	"assetboard/internal/config"
	"assetboard/internal/database"
	"assetboard/internal/logger"
	"assetboard/internal/router"
	"assetboard/internal/services"
	"assetboard/internal/validator"
)

// @title           Assetboard API
// @version         1.0
// @description     Assetboard aggregates uploaded holdings tables into per-investor summaries, rankings and breakdowns.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

const purgeInterval = 10 * time.Minute

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	validator.Register()

	// Create the in-memory session store
	dbManager, err := database.NewManager(database.Options{
		DSN:     appConfig.DatabaseDSN,
		Verbose: !appConfig.IsProduction(),
	})
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	sessionService := services.NewSessionService(db, appConfig.SessionTTL)
	datasetService := services.NewDatasetService(db, sessionService)
	analyticsService := services.NewAnalyticsService(datasetService)

	go purgeSessions(sessionService)

	r := router.New(appConfig, router.Services{
		Sessions:  sessionService,
		Datasets:  datasetService,
		Analytics: analyticsService,
	})

	log.Infof("Starting Assetboard server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return r.Run(":" + appConfig.Port)
}

// purgeSessions discards expired sessions and their datasets on a fixed
// interval. Session creation purges as well, so an idle server still
// releases memory.
func purgeSessions(sessions services.SessionServicer) {
	log := logger.Named("purge")
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for now := range ticker.C {
		if _, err := sessions.PurgeExpired(now); err != nil {
			log.Warnw("failed to purge expired sessions", "error", err)
		}
	}
}
