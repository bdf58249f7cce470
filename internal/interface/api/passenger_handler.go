package api

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"airport-ops-service/internal/usecase"
	"airport-ops-service/pkg/apperr"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

type createPassengerRequest struct {
	Name          string `json:"name" validate:"required,min=3"`
	CPF           string `json:"cpf" validate:"required,cpf"`
	FlightID      string `json:"flightId" validate:"required"`
	CheckInStatus string `json:"checkInStatus" validate:"omitempty,oneof=pending done"`
}

type updatePassengerRequest struct {
	Name *string `json:"name" validate:"omitempty,min=3"`
	CPF  *string `json:"cpf" validate:"omitempty,cpf"`
	// FlightID distinguishes absent (keep), null (detach) and a new id.
	FlightID      json.RawMessage `json:"flightId"`
	CheckInStatus *string         `json:"checkInStatus" validate:"omitempty,oneof=pending done"`
}

// PassengerHandler serves the /api/passengers routes.
type PassengerHandler struct {
	svc      *usecase.PassengerService
	validate *validator.Validate
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// NewPassengerHandler creates a new passenger handler
func NewPassengerHandler(svc *usecase.PassengerService, validate *validator.Validate, logger logger.Logger, metrics *metrics.Metrics) *PassengerHandler {
	return &PassengerHandler{svc: svc, validate: validate, logger: logger, metrics: metrics}
}

// Create handles POST /api/passengers
func (h *PassengerHandler) Create(c *fiber.Ctx) error {
	var req createPassengerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_create", apperr.Validation("invalid request body"))
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_create", validationError(err))
	}
	if err := bodyID(req.FlightID, "flight"); err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_create", err)
	}

	passenger, err := h.svc.Create(c.UserContext(), usecase.CreatePassengerInput{
		Name:          req.Name,
		CPF:           req.CPF,
		FlightID:      req.FlightID,
		CheckInStatus: req.CheckInStatus,
	})
	if err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(passenger)
}

// List handles GET /api/passengers
func (h *PassengerHandler) List(c *fiber.Ctx) error {
	passengers, err := h.svc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_list", err)
	}
	return c.JSON(passengers)
}

// Get handles GET /api/passengers/:id
func (h *PassengerHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "passenger")
	if err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_get", err)
	}

	passenger, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_get", err)
	}
	return c.JSON(passenger)
}

// Update handles PUT /api/passengers/:id
func (h *PassengerHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "passenger")
	if err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_update", err)
	}

	var req updatePassengerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_update", apperr.Validation("invalid request body"))
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_update", validationError(err))
	}
	flightID, clearFlight, err := optionalID(req.FlightID, "flight")
	if err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_update", err)
	}

	passenger, err := h.svc.Update(c.UserContext(), id, usecase.UpdatePassengerInput{
		Name:          req.Name,
		CPF:           req.CPF,
		FlightID:      flightID,
		ClearFlight:   clearFlight,
		CheckInStatus: req.CheckInStatus,
	})
	if err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_update", err)
	}
	return c.JSON(passenger)
}

// Delete handles DELETE /api/passengers/:id
func (h *PassengerHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "passenger")
	if err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_delete", err)
	}

	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, h.metrics, "passenger_delete", err)
	}
	return respondMessage(c, "passenger removed")
}
