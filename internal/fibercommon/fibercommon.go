// Package fibercommon holds fiber middleware and the central error
// handler shared by all routes.
package fibercommon

import (
	"errors"

	"github.com/api-integrations/digistore24-webhook/internal/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	Message string `json:"message"`
}

const loggerLocalsKey = "fibercommon.logger"

// ContextLoggerMiddleware attaches a request-scoped logger to the fiber
// context. Each request gets a delivery ID so log lines from the same
// webhook call can be correlated.
func ContextLoggerMiddleware(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqLogger := logger.With().
			Str("deliveryId", uuid.NewString()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Logger()
		c.Locals(loggerLocalsKey, &reqLogger)
		return c.Next()
	}
}

// CtxLogger returns the request-scoped logger set by
// ContextLoggerMiddleware, or the global logger if none is set.
func CtxLogger(c *fiber.Ctx) *zerolog.Logger {
	if logger, ok := c.Locals(loggerLocalsKey).(*zerolog.Logger); ok {
		return logger
	}
	return &log.Logger
}

// ErrorHandler translates errors returned by handlers into JSON
// responses. richerrors.Error determines the status code and external
// message; anything else is a 500 with a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal error."

	var richErr richerrors.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &richErr):
		if richErr.Code != 0 {
			code = richErr.Code
		}
		if richErr.ExternalMsg != "" {
			message = richErr.ExternalMsg
		}
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	CtxLogger(c).Error().Err(err).Int("code", code).Msg("Request failed.")
	return c.Status(code).JSON(errorResponse{Message: message})
}
