package middleware

import (
	"catalog/pkg/events"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NewTraceContextMiddleware reads the trace and correlation ids off the
// incoming request, generating fresh ones when absent, and carries them in
// the user context so published events share the request's identifiers. Both
// ids are echoed back as response headers.
func NewTraceContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := strings.TrimSpace(c.Get("X-Trace-Id"))
		if traceID == "" {
			traceID = events.GenerateTraceID()
		}

		correlationID := strings.TrimSpace(c.Get("X-Correlation-Id"))
		if correlationID == "" {
			correlationID = events.GenerateCorrelationID()
		}

		userCtx := c.UserContext()
		if userCtx == nil {
			userCtx = context.Background()
		}

		c.SetUserContext(events.WithTrace(userCtx, traceID, correlationID))

		c.Set("X-Trace-Id", traceID)
		c.Set("X-Correlation-Id", correlationID)

		return c.Next()
	}
}
