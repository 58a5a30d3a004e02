package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"RENTEASE_BACK-END/internal/models"
)

// PostgresUserStore implements UserStore on top of pgx
type PostgresUserStore struct {
	db *pgxpool.Pool
}

// NewUserStore creates a new PostgresUserStore
func NewUserStore(db *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

// Create inserts a new user. The unique index on email backs the
// duplicate check, so a concurrent registration with the same email
// still surfaces as ErrEmailExists.
func (s *PostgresUserStore) Create(ctx context.Context, user *models.User) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, user_type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.UserType,
		user.CreatedAt, user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.ErrEmailExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByEmail fetches a user by email
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, user_type, created_at, updated_at
		 FROM users WHERE email = $1`, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.UserType,
			&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}

	return &user, nil
}

// GetByID fetches a user by id
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, user_type, created_at, updated_at
		 FROM users WHERE id = $1`, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.UserType,
			&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("select user by id: %w", err)
	}

	return &user, nil
}
