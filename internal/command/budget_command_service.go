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

// BudgetCommandService writes the user's single monthly budget.
type BudgetCommandService struct {
	budgets   *repository.BudgetRepository
	publisher *events.Publisher
}

func NewBudgetCommandService(budgets *repository.BudgetRepository, publisher *events.Publisher) *BudgetCommandService {
	return &BudgetCommandService{budgets: budgets, publisher: publisher}
}

// UpsertBudget creates the budget on first set and replaces the amount
// thereafter. The amount must be a positive finite number.
func (s *BudgetCommandService) UpsertBudget(ctx context.Context, cmd cqrs.UpsertBudgetCommand) (*models.BudgetView, error) {
	amount, err := money.FromFloat(cmd.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount", ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	now := time.Now().UTC()
	stored, err := s.budgets.Upsert(ctx, &models.Budget{
		ID:        utils.GenerateID("bgt"),
		UserID:    cmd.UserID,
		Amount:    amount,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.BudgetEventsStream, events.BudgetUpdated, events.BudgetUpdatedEvent{
		BudgetID: stored.ID,
		UserID:   stored.UserID,
		Amount:   stored.Amount.Float64(),
	}); err != nil {
		slog.WarnContext(ctx, "failed to publish budget.updated event", "error", err)
	}

	return models.BudgetToView(stored), nil
}
