package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "DATABASE_URL", "JWT_SIGNING_KEY_SECRET", "JWT_ISSUER",
		"JWT_TTL_MINUTES", "SECRETS_SOURCE", "SECRETS_DIR",
		"MIN_PASSWORD_LENGTH", "BCRYPT_COST",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "JWT_SIGNING_KEY", cfg.JWTSigningKeySecret)
	assert.Equal(t, "auth-service", cfg.JWTIssuer)
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
	assert.Equal(t, "env", cfg.SecretsSource)
	assert.Equal(t, 8, cfg.MinPasswordLength)
	assert.Equal(t, 0, cfg.BcryptCost)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/auth")
	t.Setenv("JWT_ISSUER", "my-issuer")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("SECRETS_SOURCE", "file")
	t.Setenv("SECRETS_DIR", "/run/secrets")
	t.Setenv("MIN_PASSWORD_LENGTH", "12")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/auth", cfg.DatabaseURL)
	assert.Equal(t, "my-issuer", cfg.JWTIssuer)
	assert.Equal(t, 15, cfg.JWTTTLMinutes)
	assert.Equal(t, "file", cfg.SecretsSource)
	assert.Equal(t, "/run/secrets", cfg.SecretsDir)
	assert.Equal(t, 12, cfg.MinPasswordLength)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")

	cfg := Load()
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
}
