package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp(t *testing.T, issuer *Issuer) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(issuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":   c.Locals("userId"),
			"role": c.Locals("role"),
		})
	})
	return app
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	issuer, err := NewIssuer([]byte("test-secret"), "auth-service-test", time.Hour)
	require.NoError(t, err)
	app := protectedApp(t, issuer)

	token, _, err := issuer.Issue(context.Background(), testUser())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareAcceptsBareToken(t *testing.T) {
	issuer, err := NewIssuer([]byte("test-secret"), "auth-service-test", time.Hour)
	require.NoError(t, err)
	app := protectedApp(t, issuer)

	token, _, err := issuer.Issue(context.Background(), testUser())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	issuer, err := NewIssuer([]byte("test-secret"), "auth-service-test", time.Hour)
	require.NoError(t, err)
	app := protectedApp(t, issuer)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	expired, err := NewIssuer([]byte("test-secret"), "auth-service-test", -time.Minute)
	require.NoError(t, err)
	verifier, err := NewIssuer([]byte("test-secret"), "auth-service-test", time.Hour)
	require.NoError(t, err)
	app := protectedApp(t, verifier)

	token, _, err := expired.Issue(context.Background(), testUser())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsGarbage(t *testing.T) {
	issuer, err := NewIssuer([]byte("test-secret"), "auth-service-test", time.Hour)
	require.NoError(t, err)
	app := protectedApp(t, issuer)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
