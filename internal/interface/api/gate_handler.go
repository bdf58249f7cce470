package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"airport-ops-service/internal/usecase"
	"airport-ops-service/pkg/apperr"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

type createGateRequest struct {
	Code string `json:"code" validate:"required,min=2"`
}

type updateGateRequest struct {
	Code *string `json:"code" validate:"omitempty,min=2"`
	// Available takes effect only when it is an actual JSON boolean; other
	// types are ignored, matching the original API.
	Available interface{} `json:"available"`
}

// GateHandler serves the /api/gates routes.
type GateHandler struct {
	svc      *usecase.GateService
	validate *validator.Validate
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// NewGateHandler creates a new gate handler
func NewGateHandler(svc *usecase.GateService, validate *validator.Validate, logger logger.Logger, metrics *metrics.Metrics) *GateHandler {
	return &GateHandler{svc: svc, validate: validate, logger: logger, metrics: metrics}
}

// Create handles POST /api/gates
func (h *GateHandler) Create(c *fiber.Ctx) error {
	var req createGateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.logger, h.metrics, "gate_create", apperr.Validation("invalid request body"))
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, h.logger, h.metrics, "gate_create", validationError(err))
	}

	gate, err := h.svc.Create(c.UserContext(), req.Code)
	if err != nil {
		return respondError(c, h.logger, h.metrics, "gate_create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(gate)
}

// List handles GET /api/gates
func (h *GateHandler) List(c *fiber.Ctx) error {
	gates, err := h.svc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, h.metrics, "gate_list", err)
	}
	return c.JSON(gates)
}

// Get handles GET /api/gates/:id
func (h *GateHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "gate")
	if err != nil {
		return respondError(c, h.logger, h.metrics, "gate_get", err)
	}

	gate, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, h.metrics, "gate_get", err)
	}
	return c.JSON(gate)
}

// Update handles PUT /api/gates/:id
func (h *GateHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "gate")
	if err != nil {
		return respondError(c, h.logger, h.metrics, "gate_update", err)
	}

	var req updateGateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.logger, h.metrics, "gate_update", apperr.Validation("invalid request body"))
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, h.logger, h.metrics, "gate_update", validationError(err))
	}

	in := usecase.UpdateGateInput{Code: req.Code}
	if b, ok := req.Available.(bool); ok {
		in.Available = &b
	}

	gate, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.logger, h.metrics, "gate_update", err)
	}
	return c.JSON(gate)
}

// Delete handles DELETE /api/gates/:id
func (h *GateHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "gate")
	if err != nil {
		return respondError(c, h.logger, h.metrics, "gate_delete", err)
	}

	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, h.metrics, "gate_delete", err)
	}
	return respondMessage(c, "boarding gate removed")
}
