package events

import "time"

// Event types
const (
	UserCreated = "user.created"

	AccountCreated        = "account.created"
	AccountDefaultChanged = "account.default_changed"

	TransactionCreated     = "transaction.created"
	TransactionsBulkDelete = "transaction.bulk_deleted"

	BudgetUpdated = "budget.updated"

	// DashboardRefresh tells external consumers that a user's dashboard
	// and per-account views are stale and must be re-fetched.
	DashboardRefresh = "dashboard.refresh"
)

// Stream names
const (
	UserEventsStream        = "user.events"
	AccountEventsStream     = "account.events"
	TransactionEventsStream = "transaction.events"
	BudgetEventsStream      = "budget.events"
	RefreshEventsStream     = "refresh.events"
)

// Event is the envelope written to a stream entry.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type UserCreatedEvent struct {
	UserID     string `json:"userId"`
	ExternalID string `json:"externalId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
}

type AccountCreatedEvent struct {
	AccountID string `json:"accountId"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsDefault bool   `json:"isDefault"`
}

type AccountDefaultChangedEvent struct {
	AccountID string `json:"accountId"`
	UserID    string `json:"userId"`
}

// TransactionCreatedEvent is produced by the external transaction entry
// point; this service consumes it to keep read models current.
type TransactionCreatedEvent struct {
	TransactionID     string  `json:"transactionId"`
	AccountID         string  `json:"accountId"`
	UserID            string  `json:"userId"`
	Amount            float64 `json:"amount"`
	Type              string  `json:"type"`
	Date              string  `json:"date"`
	IsRecurring       bool    `json:"isRecurring"`
	RecurringInterval string  `json:"recurringInterval,omitempty"`
}

type TransactionsBulkDeletedEvent struct {
	UserID         string   `json:"userId"`
	TransactionIDs []string `json:"transactionIds"`
	AccountIDs     []string `json:"accountIds"`
}

type BudgetUpdatedEvent struct {
	BudgetID string  `json:"budgetId"`
	UserID   string  `json:"userId"`
	Amount   float64 `json:"amount"`
}

type DashboardRefreshEvent struct {
	UserID     string   `json:"userId"`
	AccountIDs []string `json:"accountIds,omitempty"`
}
