package query

import (
	"context"

	"github.com/dinesh6383/Finance-tracking-App/internal/cqrs"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/dinesh6383/Finance-tracking-App/internal/repository"
)

// DashboardQueryService serves the dashboard read model.
type DashboardQueryService struct {
	transactions *repository.TransactionRepository
	views        *repository.ReadModelStore
}

func NewDashboardQueryService(transactions *repository.TransactionRepository, views *repository.ReadModelStore) *DashboardQueryService {
	return &DashboardQueryService{transactions: transactions, views: views}
}

// GetDashboardData returns every transaction for the user, newest first.
// Served from the cached projection when warm.
func (s *DashboardQueryService) GetDashboardData(ctx context.Context, q cqrs.GetDashboardQuery) (*models.DashboardView, error) {
	if view, ok := s.views.GetDashboard(ctx, q.UserID); ok {
		return view, nil
	}

	transactions, err := s.transactions.ListByUserID(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	view := &models.DashboardView{
		Transactions: make([]models.TransactionView, len(transactions)),
	}
	for i := range transactions {
		view.Transactions[i] = *models.TransactionToView(&transactions[i])
	}

	s.views.CacheDashboard(ctx, q.UserID, view)
	return view, nil
}
