package models

import "time"

// AccountView is the read-optimised projection of an account. Monetary
// values cross the wire as plain numbers; UserID stays in the projection so
// cached copies keep supporting ownership checks.
type AccountView struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Balance          float64   `json:"balance"`
	IsDefault        bool      `json:"isDefault"`
	TransactionCount int       `json:"transactionCount"`
	CreatedAt        time.Time `json:"createdTimestamp"`
	UpdatedAt        time.Time `json:"updatedTimestamp"`
}

// TransactionView is the read-optimised projection of a transaction.
type TransactionView struct {
	ID                string     `json:"id"`
	AccountID         string     `json:"accountId"`
	UserID            string     `json:"userId"`
	Type              string     `json:"type"`
	Amount            float64    `json:"amount"`
	Date              time.Time  `json:"date"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	IsRecurring       bool       `json:"isRecurring"`
	RecurringInterval string     `json:"recurringInterval,omitempty"`
	NextRecurringDate *time.Time `json:"nextRecurringDate,omitempty"`
	CreatedAt         time.Time  `json:"createdTimestamp"`
}

// BudgetView is the read-optimised projection of a budget.
type BudgetView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdTimestamp"`
	UpdatedAt time.Time `json:"updatedTimestamp"`
}

// AccountTransactionsView is the composite projection served for a single
// account page: the account plus its transactions, newest first.
type AccountTransactionsView struct {
	Account      AccountView       `json:"account"`
	Transactions []TransactionView `json:"transactions"`
}

// DashboardView is the projection served for the dashboard: every
// transaction of the user, newest first.
type DashboardView struct {
	Transactions []TransactionView `json:"transactions"`
}

// AccountToView converts the write model into its wire projection.
func AccountToView(a *Account) *AccountView {
	return &AccountView{
		ID:        a.ID,
		UserID:    a.UserID,
		Name:      a.Name,
		Type:      string(a.Type),
		Balance:   a.Balance.Float64(),
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// TransactionToView converts the write model into its wire projection.
func TransactionToView(t *Transaction) *TransactionView {
	view := &TransactionView{
		ID:          t.ID,
		AccountID:   t.AccountID,
		UserID:      t.UserID,
		Type:        string(t.Type),
		Amount:      t.Amount.Float64(),
		Date:        t.Date,
		Description: t.Description,
		Category:    t.Category,
		IsRecurring: t.IsRecurring,
		CreatedAt:   t.CreatedAt,
	}
	if t.RecurringInterval != nil {
		view.RecurringInterval = string(*t.RecurringInterval)
	}
	if t.NextRecurringDate != nil {
		next := *t.NextRecurringDate
		view.NextRecurringDate = &next
	}
	return view
}

// BudgetToView converts the write model into its wire projection.
func BudgetToView(b *Budget) *BudgetView {
	return &BudgetView{
		ID:        b.ID,
		UserID:    b.UserID,
		Amount:    b.Amount.Float64(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
