package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// ValidationError reports a 400 with the offending request fields.
func ValidationError(c *fiber.Ctx, message string, fields []string) error {
	return JSON(c, fiber.StatusBadRequest, ErrorResponse{Message: message, Fields: fields})
}
