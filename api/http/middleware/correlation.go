// Package middleware holds transport-level middlewares that are not tied to
// authentication.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CorrelationHeader is the request/response header carrying the correlation id.
const CorrelationHeader = "X-Correlation-Id"

// NewCorrelation assigns or propagates a correlation id for every request,
// echoes it in the response and logs request completion with it.
func NewCorrelation(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		corrID := c.Get(CorrelationHeader)
		if corrID == "" {
			corrID = uuid.NewString()
		}
		c.Locals("correlationId", corrID)
		c.Set(CorrelationHeader, corrID)

		start := time.Now()
		err := c.Next()

		log.Info("request completed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
			slog.Duration("duration", time.Since(start)),
			slog.String("correlation_id", corrID),
		)
		return err
	}
}
