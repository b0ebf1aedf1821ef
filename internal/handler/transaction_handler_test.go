package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/dinesh6383/Finance-tracking-App/internal/command"
	"github.com/dinesh6383/Finance-tracking-App/internal/cqrs"
	"github.com/gin-gonic/gin"
)

type mockTransactionCommander struct {
	bulkDeleteFn func(cqrs.BulkDeleteTransactionsCommand) error
}

func (m *mockTransactionCommander) BulkDelete(_ context.Context, cmd cqrs.BulkDeleteTransactionsCommand) error {
	if m.bulkDeleteFn != nil {
		return m.bulkDeleteFn(cmd)
	}
	return fmt.Errorf("not configured")
}

func newTransactionTestRouter(cmds TransactionCommander, resolver IdentityResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(fakeAuth("ext-user-1"))
	h := NewTransactionHandler(cmds, resolver)
	r.POST("/v1/transactions/bulk-delete", h.BulkDelete)
	return r
}

func TestBulkDelete(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		bulkDeleteFn   func(cqrs.BulkDeleteTransactionsCommand) error
		expectedStatus int
		expectSuccess  bool
	}{
		{
			name: "success - deletes owned transactions",
			body: map[string]interface{}{"transactionIds": []string{"txn-aaaaaaaaaa", "txn-bbbbbbbbbb"}},
			bulkDeleteFn: func(cmd cqrs.BulkDeleteTransactionsCommand) error {
				if len(cmd.TransactionIDs) != 2 {
					return fmt.Errorf("unexpected ids %v", cmd.TransactionIDs)
				}
				return nil
			},
			expectedStatus: http.StatusOK,
			expectSuccess:  true,
		},
		{
			name: "failure - reconciliation aborts",
			body: map[string]interface{}{"transactionIds": []string{"txn-aaaaaaaaaa"}},
			bulkDeleteFn: func(cmd cqrs.BulkDeleteTransactionsCommand) error {
				return fmt.Errorf("%w: serialization conflict", command.ErrTransactionFailure)
			},
			expectedStatus: http.StatusInternalServerError,
			expectSuccess:  false,
		},
		{
			name:           "bad request - missing ids",
			body:           map[string]interface{}{},
			bulkDeleteFn:   nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - malformed id",
			body:           map[string]interface{}{"transactionIds": []string{"not-an-id"}},
			bulkDeleteFn:   nil,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := &mockTransactionCommander{bulkDeleteFn: tt.bulkDeleteFn}
			router := newTransactionTestRouter(cmds, &mockResolver{})
			w := doRequest(router, http.MethodPost, "/v1/transactions/bulk-delete", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusOK || tt.expectedStatus == http.StatusInternalServerError {
				var resp BulkDeleteResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.Success != tt.expectSuccess {
					t.Errorf("[%s] expected success=%v got %v", tt.name, tt.expectSuccess, resp.Success)
				}
				if !tt.expectSuccess && resp.Message == "" {
					t.Errorf("[%s] expected a failure message", tt.name)
				}
			}
		})
	}
}
