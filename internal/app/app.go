package app

import (
	"github.com/api-integrations/digistore24-webhook/internal/controllers/webhook"
	"github.com/api-integrations/digistore24-webhook/internal/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware(logger))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Digistore24 Webhook Receiver!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	webhookController := webhook.NewWebhookController()
	app.Post("/webhook", webhookController.Receive)

	return app
}
