package models

import (
	"time"

	"github.com/dinesh6383/Finance-tracking-App/internal/money"
)

// AccountType enumerates the supported account kinds.
type AccountType string

const (
	AccountCurrent AccountType = "CURRENT"
	AccountSavings AccountType = "SAVINGS"
)

// Valid reports whether t is a recognised account type.
func (t AccountType) Valid() bool {
	return t == AccountCurrent || t == AccountSavings
}

// TransactionType enumerates the direction of a transaction.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// RecurringInterval enumerates the cadence of a recurring transaction.
type RecurringInterval string

const (
	IntervalDaily   RecurringInterval = "DAILY"
	IntervalWeekly  RecurringInterval = "WEEKLY"
	IntervalMonthly RecurringInterval = "MONTHLY"
	IntervalYearly  RecurringInterval = "YEARLY"
)

// Valid reports whether i is a recognised interval.
func (i RecurringInterval) Valid() bool {
	switch i {
	case IntervalDaily, IntervalWeekly, IntervalMonthly, IntervalYearly:
		return true
	}
	return false
}

// User is the internal record for an externally authenticated identity.
// ExternalID is the identity provider's user id and is unique.
type User struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"-"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdTimestamp"`
	UpdatedAt  time.Time `json:"updatedTimestamp"`
}

// Account is the write model for a financial account. Balance is held in
// integer minor units; it must equal the signed sum of the account's
// transactions applied over time.
type Account struct {
	ID        string
	UserID    string
	Name      string
	Type      AccountType
	Balance   money.Money
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transaction is the write model for a single ledger entry. Amount is a
// non-negative magnitude; Type carries the sign. Transactions are created
// by an external entry point and only deleted here.
type Transaction struct {
	ID                string
	AccountID         string
	UserID            string
	Type              TransactionType
	Amount            money.Money
	Date              time.Time
	Description       string
	Category          string
	IsRecurring       bool
	RecurringInterval *RecurringInterval
	NextRecurringDate *time.Time
	CreatedAt         time.Time
}

// Budget is the single monthly spending threshold for a user.
type Budget struct {
	ID        string
	UserID    string
	Amount    money.Money
	CreatedAt time.Time
	UpdatedAt time.Time
}
