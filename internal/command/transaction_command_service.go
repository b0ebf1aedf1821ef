package command

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dinesh6383/Finance-tracking-App/internal/cqrs"
	"github.com/dinesh6383/Finance-tracking-App/internal/events"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/dinesh6383/Finance-tracking-App/internal/money"
	"github.com/dinesh6383/Finance-tracking-App/internal/recurring"
	"github.com/dinesh6383/Finance-tracking-App/internal/repository"
)

// TransactionCommandService owns bulk deletion of transactions with
// compensating balance adjustment, and keeps read models current when the
// external entry point creates transactions.
type TransactionCommandService struct {
	transactions *repository.TransactionRepository
	views        *repository.ReadModelStore
	publisher    *events.Publisher
}

func NewTransactionCommandService(
	transactions *repository.TransactionRepository,
	views *repository.ReadModelStore,
	publisher *events.Publisher,
) *TransactionCommandService {
	return &TransactionCommandService{
		transactions: transactions,
		views:        views,
		publisher:    publisher,
	}
}

// BulkDelete removes the caller's transactions among cmd.TransactionIDs and
// adds the reversing delta back onto each touched account, atomically. Ids
// owned by other users are silently excluded; an empty id set is a no-op
// success. A commit failure surfaces as ErrTransactionFailure carrying the
// underlying message.
func (s *TransactionCommandService) BulkDelete(ctx context.Context, cmd cqrs.BulkDeleteTransactionsCommand) error {
	if len(cmd.TransactionIDs) == 0 {
		return nil
	}

	matched, err := s.transactions.ListByIDsForUser(ctx, cmd.RequestingUserID, cmd.TransactionIDs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionFailure, err)
	}
	if len(matched) == 0 {
		return nil
	}

	deltas := computeBalanceDeltas(matched)

	if err := s.transactions.DeleteAndReconcile(ctx, cmd.RequestingUserID, cmd.TransactionIDs, deltas); err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionFailure, err)
	}

	accountIDs := make([]string, 0, len(deltas))
	for accountID := range deltas {
		accountIDs = append(accountIDs, accountID)
		s.views.InvalidateAccount(ctx, accountID)
	}
	s.views.InvalidateDashboard(ctx, cmd.RequestingUserID)

	deletedIDs := make([]string, len(matched))
	for i, t := range matched {
		deletedIDs[i] = t.ID
	}
	if err := s.publisher.Publish(ctx, events.RefreshEventsStream, events.TransactionsBulkDelete, events.TransactionsBulkDeletedEvent{
		UserID:         cmd.RequestingUserID,
		TransactionIDs: deletedIDs,
		AccountIDs:     accountIDs,
	}); err != nil {
		slog.WarnContext(ctx, "failed to publish bulk delete event", "error", err)
	}
	if err := s.publisher.Publish(ctx, events.RefreshEventsStream, events.DashboardRefresh, events.DashboardRefreshEvent{
		UserID:     cmd.RequestingUserID,
		AccountIDs: accountIDs,
	}); err != nil {
		slog.WarnContext(ctx, "failed to publish dashboard refresh event", "error", err)
	}

	return nil
}

// computeBalanceDeltas derives, per touched account, the amount to add back
// when the given transactions disappear: deleting an EXPENSE returns its
// amount to the balance, deleting an INCOME removes it.
func computeBalanceDeltas(transactions []models.Transaction) map[string]money.Money {
	deltas := make(map[string]money.Money)
	for _, t := range transactions {
		change := t.Amount
		if t.Type == models.TransactionIncome {
			change = change.Neg()
		}
		deltas[t.AccountID] = deltas[t.AccountID].Add(change)
	}
	return deltas
}

// HandleTransactionEvent reacts to transaction.created events from the
// external entry point: it drops the stale read models and, for recurring
// transactions, records the next due date. Idempotent: duplicate delivery
// of the same transaction id is detected via Redis and skipped.
func (s *TransactionCommandService) HandleTransactionEvent(ctx context.Context, event events.Event) error {
	if event.Type != events.TransactionCreated {
		return nil
	}
	dataBytes, _ := json.Marshal(event.Data)
	var data events.TransactionCreatedEvent
	if err := json.Unmarshal(dataBytes, &data); err != nil {
		return fmt.Errorf("failed to unmarshal transaction.created event: %w", err)
	}

	if s.views.IsTransactionProcessed(ctx, data.TransactionID) {
		slog.DebugContext(ctx, "transaction already processed, skipping duplicate event",
			"transaction_id", data.TransactionID)
		return nil
	}

	s.views.InvalidateAccount(ctx, data.AccountID)
	s.views.InvalidateDashboard(ctx, data.UserID)

	if data.IsRecurring {
		if err := s.scheduleNextOccurrence(ctx, data); err != nil {
			return err
		}
	}

	s.views.MarkTransactionProcessed(ctx, data.TransactionID)
	return nil
}

func (s *TransactionCommandService) scheduleNextOccurrence(ctx context.Context, data events.TransactionCreatedEvent) error {
	date, err := time.Parse(time.RFC3339, data.Date)
	if err != nil {
		return fmt.Errorf("invalid transaction date %q: %w", data.Date, err)
	}
	next, err := recurring.NextDueDate(date, models.RecurringInterval(data.RecurringInterval), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("compute next due date: %w", err)
	}
	if err := s.transactions.UpdateNextRecurringDate(ctx, data.TransactionID, next); err != nil {
		// The row may not be visible yet if the external writer commits
		// after publishing; redelivery will retry.
		return fmt.Errorf("store next due date: %w", err)
	}
	slog.InfoContext(ctx, "scheduled next recurring occurrence",
		"transaction_id", data.TransactionID, "next", next)
	return nil
}
