package cqrs

// ---------- Account queries ----------

// ListAccountsQuery fetches all accounts belonging to a user, newest first,
// annotated with transaction counts.
type ListAccountsQuery struct {
	UserID string
}

// GetAccountTransactionsQuery fetches one account with its transactions,
// newest first, subject to ownership check.
type GetAccountTransactionsQuery struct {
	AccountID        string
	RequestingUserID string
}

// ---------- Budget queries ----------

// GetCurrentBudgetQuery fetches the user's budget together with the current
// calendar month's expense total for one account.
type GetCurrentBudgetQuery struct {
	AccountID        string
	RequestingUserID string
}

// ---------- Dashboard queries ----------

// GetDashboardQuery fetches every transaction of a user, newest first.
type GetDashboardQuery struct {
	UserID string
}
