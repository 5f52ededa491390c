// Package memory provides an in-memory identity.UserRepository used by
// tests and local development.
package memory

import (
	"context"
	"sync"

	"github.com/cloudarcade/auth-service/pkg/identity"
)

// UserRepository stores users keyed by normalized email. The mutex makes
// Create check-and-insert atomic, mirroring the unique index a real store
// provides.
type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]identity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]identity.User)}
}

func (r *UserRepository) Create(ctx context.Context, user identity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return identity.ErrEmailTaken
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (identity.User, error) {
	if err := ctx.Err(); err != nil {
		return identity.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmail[email]
	if !ok {
		return identity.User{}, identity.ErrNotFound
	}
	return user, nil
}
