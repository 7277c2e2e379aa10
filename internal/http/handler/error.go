package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"restaurantapi/internal/http/middleware"
)

// errorPayload is the error response body. Error carries the raw error text.
type errorPayload struct {
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error:     message,
	})
}

// internalError logs err and returns it to the client verbatim with a 500.
func internalError(c *fiber.Ctx, log *zap.Logger, op string, err error) error {
	log.Error(op+"_failed",
		zap.String("request_id", requestIDFromCtx(c)),
		zap.Error(err),
	)
	return writeError(c, fiber.StatusInternalServerError, err.Error())
}

// ErrorHandler returns a Fiber global error handler for errors no route
// handled itself (unknown paths, wrong methods, missing uploads).
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "request body too large")
		default:
			return writeError(c, status, "internal server error")
		}
	}
}
