package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

// RequestLogger logs each request and feeds the request-duration histogram.
func RequestLogger(log logger.Logger, met *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		elapsed := time.Since(start)
		met.ObserveRequest(c.Method(), c.Route().Path, strconv.Itoa(status), elapsed)
		log.Info("Request completed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"durationMs", elapsed.Milliseconds(),
		)
		return err
	}
}
