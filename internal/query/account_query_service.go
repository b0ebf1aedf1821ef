// Package query hosts the read-side services. Reads prefer the Redis read
// models and fall back to PostgreSQL, warming the cache on cold reads.
package query

import (
	"context"

	"github.com/dinesh6383/Finance-tracking-App/internal/cqrs"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/dinesh6383/Finance-tracking-App/internal/repository"
)

// AccountQueryService serves account listings and account detail pages.
type AccountQueryService struct {
	accounts     *repository.AccountRepository
	transactions *repository.TransactionRepository
	views        *repository.ReadModelStore
}

func NewAccountQueryService(
	accounts *repository.AccountRepository,
	transactions *repository.TransactionRepository,
	views *repository.ReadModelStore,
) *AccountQueryService {
	return &AccountQueryService{
		accounts:     accounts,
		transactions: transactions,
		views:        views,
	}
}

// ListAccounts returns the user's accounts newest first, each annotated
// with its transaction count.
func (s *AccountQueryService) ListAccounts(ctx context.Context, q cqrs.ListAccountsQuery) ([]models.AccountView, error) {
	items, err := s.accounts.ListByUserID(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	views := make([]models.AccountView, len(items))
	for i, item := range items {
		view := models.AccountToView(&item.Account)
		view.TransactionCount = item.TransactionCount
		views[i] = *view
	}
	return views, nil
}

// GetAccountTransactions returns one account with its transactions, newest
// first. repository.ErrNotFound when the account is absent or owned by
// someone else.
func (s *AccountQueryService) GetAccountTransactions(ctx context.Context, q cqrs.GetAccountTransactionsQuery) (*models.AccountTransactionsView, error) {
	if view, ok := s.views.GetAccountTransactions(ctx, q.AccountID); ok {
		// Cached projections are keyed by account id only; re-check the owner.
		if view.Account.UserID == q.RequestingUserID {
			return view, nil
		}
		return nil, repository.ErrNotFound
	}

	account, err := s.accounts.GetByID(ctx, q.RequestingUserID, q.AccountID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactions.ListByAccountID(ctx, q.RequestingUserID, q.AccountID)
	if err != nil {
		return nil, err
	}

	accountView := models.AccountToView(account)
	accountView.TransactionCount = len(transactions)
	view := &models.AccountTransactionsView{
		Account:      *accountView,
		Transactions: make([]models.TransactionView, len(transactions)),
	}
	for i := range transactions {
		view.Transactions[i] = *models.TransactionToView(&transactions[i])
	}

	s.views.CacheAccountTransactions(ctx, q.AccountID, view)
	return view, nil
}
