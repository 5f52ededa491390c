package identity

import (
	"context"
	"errors"
	"strings"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports the request fields that failed structural checks.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations must enforce email uniqueness atomically in Create
// (a unique index or equivalent); the service's pre-check is only an
// optimization. Emails are passed already normalized.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}
