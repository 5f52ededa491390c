package jwt

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudarcade/auth-service/pkg/identity"
)

func testUser() identity.User {
	return identity.User{
		ID:   uuid.New(),
		Role: identity.RolePlayer,
	}
}

func TestIssueAndParseHS256(t *testing.T) {
	issuer, err := NewIssuer([]byte("test-secret"), "auth-service-test", time.Hour)
	require.NoError(t, err)

	user := testUser()
	token, expiresAt, err := issuer.Issue(context.Background(), user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "Player", claims.Role)
	assert.Equal(t, "auth-service-test", claims.Issuer)
	assert.NotNil(t, claims.IssuedAt)
}

func TestIssueAndParseRS256(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	})

	issuer, err := NewIssuer(keyPEM, "auth-service-test", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, gojwt.SigningMethodRS256, issuer.method)

	token, _, err := issuer.Issue(context.Background(), testUser())
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "Player", claims.Role)
}

func TestMissingKeyIsFatal(t *testing.T) {
	_, err := NewIssuer(nil, "auth-service-test", time.Hour)
	assert.ErrorIs(t, err, ErrNoSigningKey)

	_, err = NewIssuer([]byte("   \n"), "auth-service-test", time.Hour)
	assert.ErrorIs(t, err, ErrNoSigningKey)
}

func TestMalformedPEMKeyIsFatal(t *testing.T) {
	bad := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: []byte("garbage"),
	})
	_, err := NewIssuer(bad, "auth-service-test", time.Hour)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer, err := NewIssuer([]byte("test-secret"), "auth-service-test", -time.Minute)
	require.NoError(t, err)

	token, _, err := issuer.Issue(context.Background(), testUser())
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestTokenValidInsideWindow(t *testing.T) {
	issuer, err := NewIssuer([]byte("test-secret"), "auth-service-test", time.Minute)
	require.NoError(t, err)

	token, _, err := issuer.Issue(context.Background(), testUser())
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.NoError(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	issuer, err := NewIssuer([]byte("test-secret"), "auth-service-test", time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.Issue(context.Background(), testUser())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = issuer.Parse(tampered)
	assert.Error(t, err)
}

func TestWrongKeyRejected(t *testing.T) {
	issuer, err := NewIssuer([]byte("test-secret"), "auth-service-test", time.Hour)
	require.NoError(t, err)
	other, err := NewIssuer([]byte("other-secret"), "auth-service-test", time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.Issue(context.Background(), testUser())
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestWrongIssuerRejected(t *testing.T) {
	a, err := NewIssuer([]byte("test-secret"), "service-a", time.Hour)
	require.NoError(t, err)
	b, err := NewIssuer([]byte("test-secret"), "service-b", time.Hour)
	require.NoError(t, err)

	token, _, err := a.Issue(context.Background(), testUser())
	require.NoError(t, err)

	_, err = b.Parse(token)
	assert.Error(t, err)
}
