package command

import (
	"context"
	"testing"

	"github.com/dinesh6383/Finance-tracking-App/internal/cqrs"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/dinesh6383/Finance-tracking-App/internal/money"
	"github.com/stretchr/testify/assert"
)

func expense(accountID string, cents int64) models.Transaction {
	return models.Transaction{
		AccountID: accountID,
		Type:      models.TransactionExpense,
		Amount:    money.FromCents(cents),
	}
}

func income(accountID string, cents int64) models.Transaction {
	return models.Transaction{
		AccountID: accountID,
		Type:      models.TransactionIncome,
		Amount:    money.FromCents(cents),
	}
}

func TestComputeBalanceDeltasExpensesAddBack(t *testing.T) {
	// Two expenses of 50 and 30 on one account: deleting both returns 80.
	deltas := computeBalanceDeltas([]models.Transaction{
		expense("acc-a", 5000),
		expense("acc-a", 3000),
	})
	assert.Len(t, deltas, 1)
	assert.Equal(t, int64(8000), deltas["acc-a"].Cents)
}

func TestComputeBalanceDeltasIncomeSubtracts(t *testing.T) {
	deltas := computeBalanceDeltas([]models.Transaction{
		income("acc-a", 10000),
	})
	assert.Equal(t, int64(-10000), deltas["acc-a"].Cents)
}

func TestComputeBalanceDeltasMixedAcrossAccounts(t *testing.T) {
	deltas := computeBalanceDeltas([]models.Transaction{
		expense("acc-a", 5000),
		income("acc-a", 2000),
		expense("acc-b", 700),
		income("acc-c", 700),
	})
	assert.Len(t, deltas, 3)
	assert.Equal(t, int64(3000), deltas["acc-a"].Cents)
	assert.Equal(t, int64(700), deltas["acc-b"].Cents)
	assert.Equal(t, int64(-700), deltas["acc-c"].Cents)
}

func TestComputeBalanceDeltasEmpty(t *testing.T) {
	deltas := computeBalanceDeltas(nil)
	assert.Empty(t, deltas)
}

func TestBulkDeleteEmptyIDSetIsNoOp(t *testing.T) {
	// No repositories wired: an empty id set must return before any store access.
	svc := &TransactionCommandService{}
	err := svc.BulkDelete(context.Background(), cqrs.BulkDeleteTransactionsCommand{
		RequestingUserID: "usr-aaaaaaaaaa",
	})
	assert.NoError(t, err)
}
