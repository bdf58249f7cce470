package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airport-ops-service/internal/infrastructure/config"
	"airport-ops-service/internal/infrastructure/persistence"
	"airport-ops-service/internal/interface/api"
	mongoRepo "airport-ops-service/internal/interface/repository"
	"airport-ops-service/internal/usecase"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting Airport Operations Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up metrics
	met := metrics.NewMetrics("airport_ops")

	// Set up repositories
	flightRepo := mongoRepo.NewMongoFlightRepository(db)
	gateRepo := mongoRepo.NewMongoGateRepository(db)
	passengerRepo := mongoRepo.NewMongoPassengerRepository(db)

	// Set up use cases
	allocator := usecase.NewGateAllocator(flightRepo, gateRepo, met, log)
	flightSvc := usecase.NewFlightService(flightRepo, gateRepo, passengerRepo, allocator, log)
	gateSvc := usecase.NewGateService(gateRepo, log)
	passengerSvc := usecase.NewPassengerService(passengerRepo, flightRepo, log)
	reportSvc := usecase.NewReportService(flightRepo, gateRepo, passengerRepo, met, log)

	// Set up HTTP handlers
	validate := api.NewValidator()
	app := api.NewApp(api.Handlers{
		Flights:    api.NewFlightHandler(flightSvc, validate, log, met),
		Gates:      api.NewGateHandler(gateSvc, validate, log, met),
		Passengers: api.NewPassengerHandler(passengerSvc, validate, log, met),
		Reports:    api.NewReportHandler(reportSvc, log, met),
	}, log, met, cfg.ReadTimeout, cfg.WriteTimeout)

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Airport Operations Service stopped")
}
