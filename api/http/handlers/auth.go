package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cloudarcade/auth-service/api/http/presenter"
	"github.com/cloudarcade/auth-service/pkg/identity"
)

type AuthHandler struct {
	useCase identity.IdentityUseCase
}

func NewAuthHandler(useCase identity.IdentityUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerPlayerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// RegisterPlayer handles player account registration.
// @Summary Register player
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerPlayerRequest true "player registration payload"
// @Success 201 {object} identity.PlayerProfile
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register/player [post]
func (h *AuthHandler) RegisterPlayer(c *fiber.Ctx) error {
	var req registerPlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	profile, err := h.useCase.RegisterPlayer(c.Context(), identity.RegisterPlayerInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return registrationError(c, err)
	}

	c.Set(fiber.HeaderLocation, "/api/users/"+profile.ID)
	return presenter.JSON(c, http.StatusCreated, profile)
}

type registerPublisherRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"companyName"`
}

// RegisterPublisher handles publisher account registration.
// @Summary Register publisher
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerPublisherRequest true "publisher registration payload"
// @Success 201 {object} identity.PublisherProfile
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register/publisher [post]
func (h *AuthHandler) RegisterPublisher(c *fiber.Ctx) error {
	var req registerPublisherRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	profile, err := h.useCase.RegisterPublisher(c.Context(), identity.RegisterPublisherInput{
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return registrationError(c, err)
	}

	c.Set(fiber.HeaderLocation, "/api/users/"+profile.ID)
	return presenter.JSON(c, http.StatusCreated, profile)
}

type authenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authenticate verifies credentials and issues a signed token.
// @Summary Authenticate
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body authenticateRequest true "credentials"
// @Success 200 {object} identity.TokenResult
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/authenticate [post]
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	var req authenticateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to authenticate")
	}

	return presenter.JSON(c, http.StatusOK, result)
}

// registrationError maps domain errors from either registration path to a
// response without leaking internals.
func registrationError(c *fiber.Ctx, err error) error {
	var vErr *identity.ValidationError
	switch {
	case errors.As(err, &vErr):
		return presenter.ValidationError(c, "invalid registration payload", vErr.Fields)
	case errors.Is(err, identity.ErrEmailTaken):
		return presenter.Error(c, http.StatusConflict, "email already registered")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
	}
}
