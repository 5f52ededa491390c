package identity

import (
	"time"

	"github.com/google/uuid"
)

// Role discriminates the two account kinds sharing the users table.
type Role string

const (
	RolePlayer    Role = "Player"
	RolePublisher Role = "Publisher"
)

// User is the domain entity behind both account kinds. The variant payload
// (DisplayName for players, CompanyName for publishers) lives in nullable
// fields keyed off Role rather than separate types, so the storage schema
// stays uniform.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string `json:"-"`
	Role         Role
	DisplayName  string
	CompanyName  string
	CreatedAt    time.Time
}

// PlayerProfile is the public view returned after player registration.
// It never carries the password hash.
type PlayerProfile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	DisplayName string    `json:"displayName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PublisherProfile is the public view returned after publisher registration.
type PublisherProfile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	CompanyName string    `json:"companyName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TokenResult is returned on successful authentication.
type TokenResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (u User) playerProfile() PlayerProfile {
	return PlayerProfile{
		ID:          u.ID.String(),
		Email:       u.Email,
		Role:        u.Role,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func (u User) publisherProfile() PublisherProfile {
	return PublisherProfile{
		ID:          u.ID.String(),
		Email:       u.Email,
		Role:        u.Role,
		CompanyName: u.CompanyName,
		CreatedAt:   u.CreatedAt,
	}
}
