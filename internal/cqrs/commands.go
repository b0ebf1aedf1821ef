package cqrs

// CreateAccountCommand opens a new account for a user. Balance arrives as
// the raw decimal string supplied by the caller; the command service owns
// parsing and validation.
type CreateAccountCommand struct {
	UserID    string
	Name      string
	Type      string
	Balance   string
	IsDefault bool
}

// SetDefaultAccountCommand flips the user's default account to AccountID.
type SetDefaultAccountCommand struct {
	AccountID        string
	RequestingUserID string
}

// BulkDeleteTransactionsCommand deletes the given transactions and
// reconciles the touched account balances in one atomic unit.
type BulkDeleteTransactionsCommand struct {
	TransactionIDs   []string
	RequestingUserID string
}

// UpsertBudgetCommand creates or replaces the user's single budget.
type UpsertBudgetCommand struct {
	UserID string
	Amount float64
}
