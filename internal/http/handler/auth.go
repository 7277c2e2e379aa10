package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"restaurantapi/internal/model"
	"restaurantapi/internal/service"
)

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login godoc
// @Summary Log in
// @Description Plain-text username/password check. No token or session is issued.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.Credentials true "Credentials"
// @Success 200 {object} loginResponse
// @Failure 401 {object} loginResponse
// @Failure 500 {object} loginResponse
// @Router /api/login [post]
func Login(svc service.AuthService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Only JSON bodies are read. Anything else is looked up as empty
		// credentials.
		var creds model.Credentials
		isJSON := strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON)
		if body := bytes.TrimSpace(c.Body()); isJSON && len(body) > 0 {
			if err := json.Unmarshal(body, &creds); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(loginResponse{Message: "Invalid request body"})
			}
		}

		err := svc.Login(c.UserContext(), creds)
		switch {
		case err == nil:
			return c.JSON(loginResponse{Success: true, Message: "Login successful"})
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(loginResponse{Message: "Invalid username or password"})
		default:
			log.Error("login_failed", zap.String("request_id", requestIDFromCtx(c)), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(loginResponse{Message: "Database error"})
		}
	}
}
