package api

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"airport-ops-service/internal/usecase"
	"airport-ops-service/pkg/apperr"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

type createFlightRequest struct {
	FlightNumber  string    `json:"flightNumber" validate:"required,min=2"`
	Origin        string    `json:"origin" validate:"required,len=3"`
	Destination   string    `json:"destination" validate:"required,len=3"`
	DepartureTime time.Time `json:"departureTime" validate:"required"`
	ArrivalTime   time.Time `json:"arrivalTime" validate:"required"`
	GateID        *string   `json:"gateId"`
	Status        string    `json:"status" validate:"omitempty,oneof=scheduled boarding completed cancelled"`
}

type updateFlightRequest struct {
	FlightNumber  *string    `json:"flightNumber" validate:"omitempty,min=2"`
	Origin        *string    `json:"origin" validate:"omitempty,len=3"`
	Destination   *string    `json:"destination" validate:"omitempty,len=3"`
	DepartureTime *time.Time `json:"departureTime"`
	ArrivalTime   *time.Time `json:"arrivalTime"`
	// GateID distinguishes absent (keep), null (unbind) and a new id.
	GateID json.RawMessage `json:"gateId"`
	Status *string         `json:"status" validate:"omitempty,oneof=scheduled boarding completed cancelled"`
}

// FlightHandler serves the /api/flights routes.
type FlightHandler struct {
	svc      *usecase.FlightService
	validate *validator.Validate
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(svc *usecase.FlightService, validate *validator.Validate, logger logger.Logger, metrics *metrics.Metrics) *FlightHandler {
	return &FlightHandler{svc: svc, validate: validate, logger: logger, metrics: metrics}
}

// Create handles POST /api/flights
func (h *FlightHandler) Create(c *fiber.Ctx) error {
	var req createFlightRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.logger, h.metrics, "flight_create", apperr.Validation("invalid request body"))
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, h.logger, h.metrics, "flight_create", validationError(err))
	}
	if req.GateID != nil {
		if err := bodyID(*req.GateID, "gate"); err != nil {
			return respondError(c, h.logger, h.metrics, "flight_create", err)
		}
	}

	flight, err := h.svc.Create(c.UserContext(), usecase.CreateFlightInput{
		FlightNumber:  req.FlightNumber,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		GateID:        req.GateID,
		Status:        req.Status,
	})
	if err != nil {
		return respondError(c, h.logger, h.metrics, "flight_create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(flight)
}

// List handles GET /api/flights
func (h *FlightHandler) List(c *fiber.Ctx) error {
	flights, err := h.svc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, h.metrics, "flight_list", err)
	}
	return c.JSON(flights)
}

// Get handles GET /api/flights/:id
func (h *FlightHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "flight")
	if err != nil {
		return respondError(c, h.logger, h.metrics, "flight_get", err)
	}

	flight, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, h.metrics, "flight_get", err)
	}
	return c.JSON(flight)
}

// Update handles PUT /api/flights/:id
func (h *FlightHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "flight")
	if err != nil {
		return respondError(c, h.logger, h.metrics, "flight_update", err)
	}

	var req updateFlightRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.logger, h.metrics, "flight_update", apperr.Validation("invalid request body"))
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, h.logger, h.metrics, "flight_update", validationError(err))
	}
	gateID, clearGate, err := optionalID(req.GateID, "gate")
	if err != nil {
		return respondError(c, h.logger, h.metrics, "flight_update", err)
	}

	flight, err := h.svc.Update(c.UserContext(), id, usecase.UpdateFlightInput{
		FlightNumber:  req.FlightNumber,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		GateID:        gateID,
		ClearGate:     clearGate,
		Status:        req.Status,
	})
	if err != nil {
		return respondError(c, h.logger, h.metrics, "flight_update", err)
	}
	return c.JSON(flight)
}

// Delete handles DELETE /api/flights/:id
func (h *FlightHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "flight")
	if err != nil {
		return respondError(c, h.logger, h.metrics, "flight_delete", err)
	}

	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, h.metrics, "flight_delete", err)
	}
	return respondMessage(c, "flight removed and its passengers detached")
}
