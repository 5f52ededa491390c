package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cloudarcade/auth-service/api/http/presenter"
)

// UsersHandler serves endpoints about the authenticated user.
type UsersHandler struct{}

func NewUsersHandler() *UsersHandler { return &UsersHandler{} }

// Me returns the identity claims of the caller's token.
// @Summary  Current user
// @Tags     users
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string]string
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /me [get]
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	role, _ := c.Locals("role").(string)
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":   userID,
		"role": role,
	})
}
