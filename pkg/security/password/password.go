// Package password implements the credential hasher on top of bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// Hasher produces and verifies salted bcrypt hashes.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost; a cost outside
// bcrypt's supported range falls back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns an opaque salted hash of plaintext. Each call embeds a fresh
// salt, so two hashes of the same password differ.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches storedHash. A mismatch or a
// malformed stored hash both yield false, never an error; bcrypt's compare
// is constant-time.
func (h *Hasher) Verify(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
