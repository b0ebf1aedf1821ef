package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dinesh6383/Finance-tracking-App/internal/models"
)

// BudgetRepository persists the single budget row per user.
type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// GetByUserID fetches the user's budget, or ErrNotFound if never set.
func (r *BudgetRepository) GetByUserID(ctx context.Context, userID string) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, amount_cents, created_at, updated_at
		FROM budgets
		WHERE user_id = $1`,
		userID,
	).Scan(&budget.ID, &budget.UserID, &budget.Amount.Cents, &budget.CreatedAt, &budget.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// Upsert creates the budget on first set and replaces the amount
// thereafter. The unique index on user_id guarantees a single row per user.
func (r *BudgetRepository) Upsert(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	var stored models.Budget
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO budgets (id, user_id, amount_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET amount_cents = EXCLUDED.amount_cents, updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, amount_cents, created_at, updated_at`,
		budget.ID, budget.UserID, budget.Amount.Cents, budget.CreatedAt, budget.UpdatedAt,
	).Scan(&stored.ID, &stored.UserID, &stored.Amount.Cents, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}
	return &stored, nil
}
