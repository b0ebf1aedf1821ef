package query

import (
	"context"
	"errors"
	"time"

	"github.com/dinesh6383/Finance-tracking-App/internal/cqrs"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/dinesh6383/Finance-tracking-App/internal/repository"
)

// BudgetOverview pairs the user's budget (nil if never set) with the
// current calendar month's expense total for one account.
type BudgetOverview struct {
	Budget          *models.BudgetView `json:"budget"`
	CurrentExpenses float64            `json:"currentExpenses"`
}

// BudgetQueryService serves the budget-versus-spend overview.
type BudgetQueryService struct {
	budgets      *repository.BudgetRepository
	transactions *repository.TransactionRepository

	// now is swappable for tests.
	now func() time.Time
}

func NewBudgetQueryService(budgets *repository.BudgetRepository, transactions *repository.TransactionRepository) *BudgetQueryService {
	return &BudgetQueryService{
		budgets:      budgets,
		transactions: transactions,
		now:          time.Now,
	}
}

// GetCurrentBudget returns the user's budget (null if never set) and the
// sum of this month's EXPENSE transactions on the given account. The month
// window is pinned to UTC.
func (s *BudgetQueryService) GetCurrentBudget(ctx context.Context, q cqrs.GetCurrentBudgetQuery) (*BudgetOverview, error) {
	overview := &BudgetOverview{}

	budget, err := s.budgets.GetByUserID(ctx, q.RequestingUserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if budget != nil {
		overview.Budget = models.BudgetToView(budget)
	}

	from, to := monthWindowUTC(s.now())
	total, err := s.transactions.SumExpensesInRange(ctx, q.RequestingUserID, q.AccountID, from, to)
	if err != nil {
		return nil, err
	}
	overview.CurrentExpenses = total.Float64()

	return overview, nil
}

// monthWindowUTC returns the inclusive bounds of the calendar month
// containing t: the first instant of day 1 through the last second of the
// final day, in UTC.
func monthWindowUTC(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
