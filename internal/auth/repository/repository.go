package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webforge_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// User represents a staff account
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	Roles        []string  `db:"roles"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Repository provides database operations for auth
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new auth repository
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetUserByEmail retrieves a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return r.getUser(ctx, `WHERE email = $1`, email)
}

// GetUserByID retrieves a user by ID
func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.getUser(ctx, `WHERE id = $1`, id)
}

func (r *Repository) getUser(ctx context.Context, where string, arg interface{}) (*User, error) {
	var u User
	query := `SELECT id, email, password_hash, display_name, roles, created_at, updated_at FROM users ` + where

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Roles, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// CreateRefreshToken stores a hashed refresh token
func (r *Repository) CreateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	query := `INSERT INTO refresh_tokens (token_hash, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, tokenHash, userID, expiresAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken resolves a hashed refresh token to its user and expiry
func (r *Repository) GetRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, time.Time, error) {
	var userID uuid.UUID
	var expiresAt time.Time

	query := `SELECT user_id, expires_at FROM refresh_tokens WHERE token_hash = $1`
	err := r.pool.QueryRow(ctx, query, tokenHash).Scan(&userID, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, time.Time{}, apperr.NotFound("refresh token not found")
		}
		return uuid.Nil, time.Time{}, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return userID, expiresAt, nil
}

// RevokeRefreshToken deletes a refresh token by hash
func (r *Repository) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// DeleteExpiredRefreshTokens removes refresh tokens past their expiry.
func (r *Repository) DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}

// RevokeAllRefreshTokens deletes every refresh token of a user
func (r *Repository) RevokeAllRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}
