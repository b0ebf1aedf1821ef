// Package command hosts the write-side services. Each service mutates the
// PostgreSQL write store, keeps the Redis read models coherent and
// announces changes on the event streams.
package command

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dinesh6383/Finance-tracking-App/internal/cqrs"
	"github.com/dinesh6383/Finance-tracking-App/internal/events"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/dinesh6383/Finance-tracking-App/internal/money"
	"github.com/dinesh6383/Finance-tracking-App/internal/repository"
	"github.com/dinesh6383/Finance-tracking-App/internal/utils"
)

// AccountCommandService writes account state.
type AccountCommandService struct {
	accounts  *repository.AccountRepository
	views     *repository.ReadModelStore
	publisher *events.Publisher
}

func NewAccountCommandService(
	accounts *repository.AccountRepository,
	views *repository.ReadModelStore,
	publisher *events.Publisher,
) *AccountCommandService {
	return &AccountCommandService{
		accounts:  accounts,
		views:     views,
		publisher: publisher,
	}
}

// CreateAccount opens an account. The balance string must parse as a
// monetary amount; a user's first account is forced default regardless of
// the requested flag.
func (s *AccountCommandService) CreateAccount(ctx context.Context, cmd cqrs.CreateAccountCommand) (*models.AccountView, error) {
	balance, err := money.Parse(cmd.Balance)
	if err != nil {
		return nil, fmt.Errorf("%w: balance %q", ErrInvalidInput, cmd.Balance)
	}

	accountType := models.AccountType(cmd.Type)
	if !accountType.Valid() {
		return nil, fmt.Errorf("%w: account type %q", ErrInvalidInput, cmd.Type)
	}

	count, err := s.accounts.CountByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	isDefault := cmd.IsDefault
	if count == 0 {
		isDefault = true
	}

	now := time.Now().UTC()
	account := &models.Account{
		ID:        utils.GenerateID("acc"),
		UserID:    cmd.UserID,
		Name:      cmd.Name,
		Type:      accountType,
		Balance:   balance,
		IsDefault: isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.views.InvalidateDashboard(ctx, cmd.UserID)
	if err := s.publisher.Publish(ctx, events.AccountEventsStream, events.AccountCreated, events.AccountCreatedEvent{
		AccountID: account.ID,
		UserID:    account.UserID,
		Name:      account.Name,
		Type:      string(account.Type),
		IsDefault: account.IsDefault,
	}); err != nil {
		slog.WarnContext(ctx, "failed to publish account.created event", "error", err)
	}

	return models.AccountToView(account), nil
}

// SetDefaultAccount makes accountID the user's single default account.
// Returns repository.ErrNotFound when the account does not belong to the
// requesting user. Calling it on the current default is a no-op for every
// other account's flag.
func (s *AccountCommandService) SetDefaultAccount(ctx context.Context, cmd cqrs.SetDefaultAccountCommand) (*models.AccountView, error) {
	account, err := s.accounts.SetDefault(ctx, cmd.RequestingUserID, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	// The default flag is baked into every cached account projection of
	// this user, not just the new default's.
	s.invalidateUserAccountViews(ctx, cmd.RequestingUserID)
	s.views.InvalidateDashboard(ctx, cmd.RequestingUserID)

	if err := s.publisher.Publish(ctx, events.AccountEventsStream, events.AccountDefaultChanged, events.AccountDefaultChangedEvent{
		AccountID: account.ID,
		UserID:    account.UserID,
	}); err != nil {
		slog.WarnContext(ctx, "failed to publish account.default_changed event", "error", err)
	}

	return models.AccountToView(account), nil
}

func (s *AccountCommandService) invalidateUserAccountViews(ctx context.Context, userID string) {
	items, err := s.accounts.ListByUserID(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "failed to list accounts for cache invalidation", "error", err)
		return
	}
	for _, item := range items {
		s.views.InvalidateAccount(ctx, item.Account.ID)
	}
}
