package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudarcade/auth-service/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, users *handlers.UsersHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	a := api.Group("/auth")
	a.Post("/register/player", auth.RegisterPlayer)
	a.Post("/register/publisher", auth.RegisterPublisher)
	a.Post("/authenticate", auth.Authenticate)

	// Token-protected endpoints
	api.Get("/me", authMW, users.Me)
}
