package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"airport-ops-service/pkg/apperr"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

// respondError maps the error taxonomy to HTTP. Conflicts answer 400 rather
// than 409 to keep the wire behavior of the original API. Internal faults are
// logged with full detail but answered with a generic message.
func respondError(c *fiber.Ctx, log logger.Logger, met *metrics.Metrics, operation string, err error) error {
	var status int
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict:
		status = fiber.StatusBadRequest
	case apperr.KindNotFound:
		status = fiber.StatusNotFound
	default:
		status = fiber.StatusInternalServerError
		met.IncError(operation)
		log.Error("Request failed", "operation", operation, "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": apperr.Message(err)})
}

func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

// pathID extracts the :id path parameter, rejecting malformed ObjectIDs
// before any store round trip.
func pathID(c *fiber.Ctx, what string) (string, error) {
	id := c.Params("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return "", apperr.Validation("invalid " + what + " id")
	}
	return id, nil
}

// bodyID validates an ObjectID carried in a request body.
func bodyID(id, what string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return apperr.Validation("invalid " + what + " id")
	}
	return nil
}

// optionalID decodes an id field that may be absent, an explicit null, or a
// hex string. A null means "clear the reference".
func optionalID(raw json.RawMessage, what string) (id *string, clear bool, err error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if string(raw) == "null" {
		return nil, true, nil
	}
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return nil, false, apperr.Validation("invalid " + what + " id")
	}
	if err := bodyID(s, what); err != nil {
		return nil, false, err
	}
	return &s, false, nil
}
