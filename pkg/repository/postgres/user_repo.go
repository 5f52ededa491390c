package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cloudarcade/auth-service/pkg/identity"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository implements identity.UserRepository backed by PostgreSQL (pgx).
// The unique index on email is the authoritative uniqueness enforcement for
// concurrent registrations across process instances.
type UserRepository struct {
	db DB
}

func NewUserRepository(ctx context.Context, db DB) (*UserRepository, error) {
	repo := &UserRepository{db: db}
	if err := repo.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *UserRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			display_name TEXT,
			company_name TEXT,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (r *UserRepository) Create(ctx context.Context, user identity.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, display_name, company_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.Email, user.PasswordHash, string(user.Role), user.DisplayName, user.CompanyName, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return identity.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (identity.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, display_name, company_name, created_at
		FROM users WHERE email = $1
	`, email)
	var user identity.User
	var role string
	var createdAt time.Time
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &role, &user.DisplayName, &user.CompanyName, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return identity.User{}, identity.ErrNotFound
		}
		return identity.User{}, err
	}
	user.Role = identity.Role(role)
	user.CreatedAt = createdAt.UTC()
	return user, nil
}
