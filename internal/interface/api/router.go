package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

// Handlers bundles the route handlers for app assembly.
type Handlers struct {
	Flights    *FlightHandler
	Gates      *GateHandler
	Passengers *PassengerHandler
	Reports    *ReportHandler
}

// NewApp assembles the fiber application: middleware, operational endpoints
// and the /api resource routes.
func NewApp(h Handlers, log logger.Logger, met *metrics.Metrics, readTimeout, writeTimeout time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(RequestLogger(log, met))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Airport Operations API running")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("Healthy")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	apiGroup := app.Group("/api")

	flights := apiGroup.Group("/flights")
	flights.Post("/", h.Flights.Create)
	flights.Get("/", h.Flights.List)
	flights.Get("/:id", h.Flights.Get)
	flights.Put("/:id", h.Flights.Update)
	flights.Delete("/:id", h.Flights.Delete)

	gates := apiGroup.Group("/gates")
	gates.Post("/", h.Gates.Create)
	gates.Get("/", h.Gates.List)
	gates.Get("/:id", h.Gates.Get)
	gates.Put("/:id", h.Gates.Update)
	gates.Delete("/:id", h.Gates.Delete)

	passengers := apiGroup.Group("/passengers")
	passengers.Post("/", h.Passengers.Create)
	passengers.Get("/", h.Passengers.List)
	passengers.Get("/:id", h.Passengers.Get)
	passengers.Put("/:id", h.Passengers.Update)
	passengers.Delete("/:id", h.Passengers.Delete)

	apiGroup.Get("/report/daily-flights", h.Reports.DailyFlights)

	return app
}
