package identity

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// IdentityUseCase describes registration/authentication behavior.
type IdentityUseCase interface {
	RegisterPlayer(ctx context.Context, in RegisterPlayerInput) (PlayerProfile, error)
	RegisterPublisher(ctx context.Context, in RegisterPublisherInput) (PublisherProfile, error)
	Authenticate(ctx context.Context, email, password string) (TokenResult, error)
}

// RegisterPlayerInput carries a player registration request.
type RegisterPlayerInput struct {
	Email       string
	Password    string
	DisplayName string
}

// RegisterPublisherInput carries a publisher registration request.
type RegisterPublisherInput struct {
	Email       string
	Password    string
	CompanyName string
}

// Hasher abstracts the credential hasher (bcrypt in production).
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, storedHash string) bool
}

// TokenIssuer abstracts signed token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(ctx context.Context, user User) (token string, expiresAt time.Time, err error)
}

// Config holds identity policy knobs. Stronger password policy is
// configuration, not code.
type Config struct {
	MinPasswordLength int
}

type identityService struct {
	repo   UserRepository
	hasher Hasher
	tokens TokenIssuer
	cfg    Config
	log    *slog.Logger
}

// NewService returns the default implementation of IdentityUseCase.
func NewService(repo UserRepository, hasher Hasher, tokens TokenIssuer, cfg Config, log *slog.Logger) IdentityUseCase {
	if cfg.MinPasswordLength < 1 {
		cfg.MinPasswordLength = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &identityService{repo: repo, hasher: hasher, tokens: tokens, cfg: cfg, log: log}
}

func (s *identityService) RegisterPlayer(ctx context.Context, in RegisterPlayerInput) (PlayerProfile, error) {
	user, err := s.register(ctx, in.Email, in.Password, User{
		Role:        RolePlayer,
		DisplayName: in.DisplayName,
	})
	if err != nil {
		return PlayerProfile{}, err
	}
	return user.playerProfile(), nil
}

func (s *identityService) RegisterPublisher(ctx context.Context, in RegisterPublisherInput) (PublisherProfile, error) {
	user, err := s.register(ctx, in.Email, in.Password, User{
		Role:        RolePublisher,
		CompanyName: in.CompanyName,
	})
	if err != nil {
		return PublisherProfile{}, err
	}
	return user.publisherProfile(), nil
}

// register is the role-agnostic registration path: validate, best-effort
// uniqueness pre-check, hash, persist. The store's unique constraint is the
// authoritative tie-breaker for concurrent inserts, not the pre-check.
func (s *identityService) register(ctx context.Context, email, password string, variant User) (User, error) {
	email = NormalizeEmail(email)

	var bad []string
	if !validEmail(email) {
		bad = append(bad, "email")
	}
	if len(password) < s.cfg.MinPasswordLength {
		bad = append(bad, "password")
	}
	if len(bad) > 0 {
		return User{}, &ValidationError{Fields: bad}
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, err
	}

	user := variant
	user.ID = uuid.New()
	user.Email = email
	user.PasswordHash = passwordHash
	user.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("id", user.ID.String()),
		slog.String("role", string(user.Role)))
	return user, nil
}

func (s *identityService) Authenticate(ctx context.Context, email, password string) (TokenResult, error) {
	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Same error as a wrong password, to avoid user enumeration.
			return TokenResult{}, ErrInvalidCredentials
		}
		return TokenResult{}, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.WarnContext(ctx, "authentication failed",
			slog.String("id", user.ID.String()))
		return TokenResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return TokenResult{}, err
	}
	return TokenResult{Token: token, ExpiresAt: expiresAt}, nil
}
