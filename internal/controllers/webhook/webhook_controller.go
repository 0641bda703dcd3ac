package webhook

import (
	"encoding/json"
	"fmt"

	"github.com/api-integrations/digistore24-webhook/internal/fibercommon"
	"github.com/api-integrations/digistore24-webhook/internal/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var eventsReceived = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "digistore24_webhook",
	Subsystem: "events",
	Name:      "received_total",
	Help:      "Number of webhook events received and acknowledged.",
})

// WebhookController handles inbound Digistore24 event notifications.
type WebhookController struct{}

// NewWebhookController creates a new WebhookController.
func NewWebhookController() *WebhookController {
	return &WebhookController{}
}

// Receive accepts a Digistore24 event notification.
//
// The payload is schemaless: Digistore24 sends different shapes per
// event type and adds fields over time, so it is decoded as an opaque
// JSON value, logged, and acknowledged. Everything that parses as JSON
// is answered with 200 {"status":"ok"} so the platform does not retry
// the delivery.
func (w *WebhookController) Receive(c *fiber.Ctx) error {
	var event any
	if err := json.Unmarshal(c.Body(), &event); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid payload",
			Err:         fmt.Errorf("failed to decode event payload: %w", err),
			Code:        fiber.StatusBadRequest,
		}
	}

	// TODO: product provisioning, user management, license handling.
	fibercommon.CtxLogger(c).Info().
		Interface("event", event).
		Msg("Received Digistore24 event")
	eventsReceived.Inc()

	return c.JSON(AckResponse{Status: "ok"})
}
