package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"airport-ops-service/internal/usecase"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

// ReportHandler serves the /api/report routes.
type ReportHandler struct {
	svc     *usecase.ReportService
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewReportHandler creates a new report handler
func NewReportHandler(svc *usecase.ReportService, logger logger.Logger, metrics *metrics.Metrics) *ReportHandler {
	return &ReportHandler{svc: svc, logger: logger, metrics: metrics}
}

// DailyFlights handles GET /api/report/daily-flights
func (h *ReportHandler) DailyFlights(c *fiber.Ctx) error {
	entries, err := h.svc.DailyFlights(c.UserContext(), time.Now())
	if err != nil {
		return respondError(c, h.logger, h.metrics, "report_daily_flights", err)
	}
	return c.JSON(entries)
}
