package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	rediscache "github.com/dinesh6383/Finance-tracking-App/internal/redis"
	goredis "github.com/redis/go-redis/v9"
)

const (
	dashboardViewKeyPrefix = "dashboard:view:"
	accountViewKeyPrefix   = "account:view:"
	processedTxnKeyPrefix  = "processed:txn:"
)

// ReadModelStore holds the Redis-backed read models: the per-user dashboard
// projection and the per-account transactions projection. Command services
// invalidate entries after every mutation; query services warm them on cold
// reads.
type ReadModelStore struct {
	redis     *goredis.Client
	dashboard *rediscache.ViewCache[models.DashboardView]
	accounts  *rediscache.ViewCache[models.AccountTransactionsView]
}

func NewReadModelStore(client *goredis.Client, dashboardTTL time.Duration) *ReadModelStore {
	return &ReadModelStore{
		redis:     client,
		dashboard: rediscache.NewViewCache[models.DashboardView](client, dashboardTTL),
		accounts:  rediscache.NewViewCache[models.AccountTransactionsView](client, 0),
	}
}

// GetDashboard returns the cached dashboard projection for a user.
func (s *ReadModelStore) GetDashboard(ctx context.Context, userID string) (*models.DashboardView, bool) {
	return s.dashboard.Get(ctx, dashboardViewKeyPrefix+userID)
}

// CacheDashboard stores the dashboard projection for a user.
func (s *ReadModelStore) CacheDashboard(ctx context.Context, userID string, view *models.DashboardView) {
	s.dashboard.Set(ctx, dashboardViewKeyPrefix+userID, view)
}

// InvalidateDashboard drops a user's dashboard projection.
func (s *ReadModelStore) InvalidateDashboard(ctx context.Context, userID string) {
	s.dashboard.Delete(ctx, dashboardViewKeyPrefix+userID)
}

// GetAccountTransactions returns the cached projection for one account.
func (s *ReadModelStore) GetAccountTransactions(ctx context.Context, accountID string) (*models.AccountTransactionsView, bool) {
	return s.accounts.Get(ctx, accountViewKeyPrefix+accountID)
}

// CacheAccountTransactions stores the projection for one account.
func (s *ReadModelStore) CacheAccountTransactions(ctx context.Context, accountID string, view *models.AccountTransactionsView) {
	s.accounts.Set(ctx, accountViewKeyPrefix+accountID, view)
}

// InvalidateAccount drops the projection for one account.
func (s *ReadModelStore) InvalidateAccount(ctx context.Context, accountID string) {
	s.accounts.Delete(ctx, accountViewKeyPrefix+accountID)
}

// IsTransactionProcessed returns true if this transaction ID has already
// been applied to the read models. Guards against duplicate delivery under
// at-least-once Redis Streams semantics.
func (s *ReadModelStore) IsTransactionProcessed(ctx context.Context, transactionID string) bool {
	val, err := s.redis.Exists(ctx, processedTxnKeyPrefix+transactionID).Result()
	return err == nil && val > 0
}

// MarkTransactionProcessed records that a transaction event has been
// applied. The marker expires after 72 hours, which must exceed the
// consumer group's redelivery window.
func (s *ReadModelStore) MarkTransactionProcessed(ctx context.Context, transactionID string) {
	key := processedTxnKeyPrefix + transactionID
	if err := s.redis.Set(ctx, key, "1", 72*time.Hour).Err(); err != nil {
		slog.Warn("failed to mark transaction processed", "transaction_id", transactionID, "error", err)
	}
}
