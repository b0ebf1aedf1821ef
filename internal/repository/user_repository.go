package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/lib/pq"
)

// UserRepository persists internal user records keyed by the identity
// provider's external id.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Returns ErrAlreadyExists when another request
// won the race on the external id unique index.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, external_id, name, email, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.ExternalID, user.Name, user.Email, user.ImageURL,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByExternalID fetches the user mapped to an identity-provider id.
func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	query := `
		SELECT id, external_id, name, email, image_url, created_at, updated_at
		FROM users
		WHERE external_id = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, externalID))
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.ExternalID, &user.Name, &user.Email, &user.ImageURL,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
