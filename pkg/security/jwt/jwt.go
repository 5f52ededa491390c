package jwt

import (
	"bytes"
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cloudarcade/auth-service/pkg/identity"
)

// ErrNoSigningKey means the signing key was not supplied at startup.
// Callers must treat this as fatal rather than issue unsigned tokens.
var ErrNoSigningKey = errors.New("jwt: signing key is empty")

// Claims includes the registered claim set plus the account role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Issuer builds signed, time-bounded tokens. The key material decides the
// scheme: a PEM-encoded RSA private key selects RS256, anything else is
// used as an HS256 secret.
type Issuer struct {
	method    jwt.SigningMethod
	signKey   any
	verifyKey any
	issuer    string
	ttl       time.Duration
}

// NewIssuer validates the supplied key and constructs an Issuer.
func NewIssuer(key []byte, issuer string, ttl time.Duration) (*Issuer, error) {
	key = bytes.TrimSpace(key)
	if len(key) == 0 {
		return nil, ErrNoSigningKey
	}
	if block, _ := pem.Decode(key); block != nil {
		priv, err := parseRSAPrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("jwt: parse RSA signing key: %w", err)
		}
		return &Issuer{
			method:    jwt.SigningMethodRS256,
			signKey:   priv,
			verifyKey: &priv.PublicKey,
			issuer:    issuer,
			ttl:       ttl,
		}, nil
	}
	return &Issuer{
		method:    jwt.SigningMethodHS256,
		signKey:   key,
		verifyKey: key,
		issuer:    issuer,
		ttl:       ttl,
	}, nil
}

// Issue signs a token for the user carrying subject, role, iat and exp.
func (i *Issuer) Issue(_ context.Context, user identity.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(i.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: string(user.Role),
	}
	token, err := jwt.NewWithClaims(i.method, claims).SignedString(i.signKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Parse verifies signature, expiry and issuer of a token produced by Issue.
// The transport layer uses this for admitting requests.
func (i *Issuer) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != i.method.Alg() {
			return nil, fmt.Errorf("jwt: unexpected signing method %s", t.Method.Alg())
		}
		return i.verifyKey, nil
	}, jwt.WithValidMethods([]string{i.method.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("jwt: invalid token claims")
	}
	if i.issuer != "" && claims.Issuer != i.issuer {
		return nil, errors.New("jwt: invalid token issuer")
	}
	return claims, nil
}

func parseRSAPrivateKey(der []byte) (*rsa.PrivateKey, error) {
	if priv, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return priv, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, err
	}
	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("unsupported private key type %T", parsed)
	}
	return priv, nil
}
