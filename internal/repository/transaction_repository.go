package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/dinesh6383/Finance-tracking-App/internal/money"
	"github.com/lib/pq"
)

// TransactionRepository reads transactions and owns the bulk delete +
// balance reconciliation atomic unit. Transactions are inserted by an
// external entry point; this service never creates them.
type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `
	id, account_id, user_id, type, amount_cents, date, description, category,
	is_recurring, recurring_interval, next_recurring_date, created_at`

// ListByIDsForUser fetches the transactions whose ids are in ids AND whose
// owner is userID. Ids owned by other users are silently absent from the
// result.
func (r *TransactionRepository) ListByIDsForUser(ctx context.Context, userID string, ids []string) ([]models.Transaction, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ANY($1) AND user_id = $2`,
		pq.Array(ids), userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListByAccountID returns an account's transactions, newest first.
func (r *TransactionRepository) ListByAccountID(ctx context.Context, userID, accountID string) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE account_id = $1 AND user_id = $2
		 ORDER BY date DESC`,
		accountID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListByUserID returns every transaction of a user, newest first.
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE user_id = $1
		 ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// DeleteAndReconcile deletes the given transactions and applies the
// per-account balance deltas inside one serializable transaction. The
// delete is re-scoped by ids AND user id, so a transaction whose ownership
// changed since the caller computed the deltas is left alone. Either every
// deletion and every balance increment commits, or none do.
func (r *TransactionRepository) DeleteAndReconcile(ctx context.Context, userID string, ids []string, deltas map[string]money.Money) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = ANY($1) AND user_id = $2`,
		pq.Array(ids), userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}

	for accountID, delta := range deltas {
		_, err = tx.ExecContext(ctx,
			`UPDATE accounts SET balance_cents = balance_cents + $1, updated_at = NOW() WHERE id = $2`,
			delta.Cents, accountID,
		)
		if err != nil {
			return fmt.Errorf("failed to adjust balance for account %s: %w", accountID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk delete: %w", err)
	}
	return nil
}

// SumExpensesInRange totals EXPENSE amounts for one account inside
// [from, to]. Returns zero when nothing matches.
func (r *TransactionRepository) SumExpensesInRange(ctx context.Context, userID, accountID string, from, to time.Time) (money.Money, error) {
	var cents int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM transactions
		WHERE user_id = $1 AND account_id = $2 AND type = 'EXPENSE' AND date >= $3 AND date <= $4`,
		userID, accountID, from, to,
	).Scan(&cents)
	if err != nil {
		return money.Money{}, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return money.FromCents(cents), nil
}

// UpdateNextRecurringDate records when a recurring transaction is next due.
func (r *TransactionRepository) UpdateNextRecurringDate(ctx context.Context, transactionID string, next time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET next_recurring_date = $2 WHERE id = $1 AND is_recurring`,
		transactionID, next,
	)
	if err != nil {
		return fmt.Errorf("failed to update next recurring date: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func collectTransactions(rows *sql.Rows) ([]models.Transaction, error) {
	var out []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var interval sql.NullString
		var nextDate sql.NullTime
		if err := rows.Scan(
			&t.ID, &t.AccountID, &t.UserID, &t.Type, &t.Amount.Cents,
			&t.Date, &t.Description, &t.Category,
			&t.IsRecurring, &interval, &nextDate, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if interval.Valid {
			i := models.RecurringInterval(interval.String)
			t.RecurringInterval = &i
		}
		if nextDate.Valid {
			d := nextDate.Time
			t.NextRecurringDate = &d
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
