package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dinesh6383/Finance-tracking-App/internal/models"
)

// AccountRepository persists accounts. The default-flag operations run as
// serializable transactions so that two concurrent reassignments for the
// same user cannot interleave; the partial unique index on
// (user_id) WHERE is_default backstops the invariant.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts the account inside one transaction. When the account is to
// be the default, every other default of the user is cleared first.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if account.IsDefault {
		_, err = tx.ExecContext(ctx,
			`UPDATE accounts SET is_default = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_default`,
			account.UserID,
		)
		if err != nil {
			return fmt.Errorf("failed to clear default accounts: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO accounts (id, user_id, name, type, balance_cents, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		account.ID, account.UserID, account.Name, string(account.Type),
		account.Balance.Cents, account.IsDefault, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit account creation: %w", err)
	}
	return nil
}

// SetDefault clears the user's current default and flags accountID inside
// one transaction. Returns ErrNotFound (and leaves every flag untouched)
// when the account does not exist or belongs to another user.
func (r *AccountRepository) SetDefault(ctx context.Context, userID, accountID string) (*models.Account, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE accounts SET is_default = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_default AND id <> $2`,
		userID, accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to clear default accounts: %w", err)
	}

	row := tx.QueryRowContext(ctx, `
		UPDATE accounts SET is_default = TRUE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, type, balance_cents, is_default, created_at, updated_at`,
		accountID, userID,
	)
	account, err := scanAccount(row)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit default change: %w", err)
	}
	return account, nil
}

// GetByID fetches an account scoped to its owner.
func (r *AccountRepository) GetByID(ctx context.Context, userID, accountID string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, type, balance_cents, is_default, created_at, updated_at
		FROM accounts
		WHERE id = $1 AND user_id = $2`,
		accountID, userID,
	)
	return scanAccount(row)
}

// CountByUserID returns how many accounts the user owns.
func (r *AccountRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// AccountWithCount pairs an account with its transaction count for listing.
type AccountWithCount struct {
	Account          models.Account
	TransactionCount int
}

// ListByUserID returns the user's accounts newest first, each annotated
// with its transaction count.
func (r *AccountRepository) ListByUserID(ctx context.Context, userID string) ([]AccountWithCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.user_id, a.name, a.type, a.balance_cents, a.is_default, a.created_at, a.updated_at,
		       COUNT(t.id)
		FROM accounts a
		LEFT JOIN transactions t ON t.account_id = a.id
		WHERE a.user_id = $1
		GROUP BY a.id
		ORDER BY a.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var out []AccountWithCount
	for rows.Next() {
		var item AccountWithCount
		if err := rows.Scan(
			&item.Account.ID, &item.Account.UserID, &item.Account.Name, &item.Account.Type,
			&item.Account.Balance.Cents, &item.Account.IsDefault,
			&item.Account.CreatedAt, &item.Account.UpdatedAt,
			&item.TransactionCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID, &account.UserID, &account.Name, &account.Type,
		&account.Balance.Cents, &account.IsDefault,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}
