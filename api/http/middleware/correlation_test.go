package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(NewCorrelation(slog.Default()))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("correlationId").(string))
	})
	return app
}

func TestCorrelationGeneratesID(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(CorrelationHeader))
}

func TestCorrelationPropagatesID(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(CorrelationHeader, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(CorrelationHeader))
}
