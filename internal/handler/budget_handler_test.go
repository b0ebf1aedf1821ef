package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/dinesh6383/Finance-tracking-App/internal/cqrs"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/dinesh6383/Finance-tracking-App/internal/query"
	"github.com/gin-gonic/gin"
)

type mockBudgetCommander struct {
	upsertFn func(cqrs.UpsertBudgetCommand) (*models.BudgetView, error)
}

func (m *mockBudgetCommander) UpsertBudget(_ context.Context, cmd cqrs.UpsertBudgetCommand) (*models.BudgetView, error) {
	if m.upsertFn != nil {
		return m.upsertFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}

type mockBudgetQuerier struct {
	getFn func(cqrs.GetCurrentBudgetQuery) (*query.BudgetOverview, error)
}

func (m *mockBudgetQuerier) GetCurrentBudget(_ context.Context, q cqrs.GetCurrentBudgetQuery) (*query.BudgetOverview, error) {
	if m.getFn != nil {
		return m.getFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

func newBudgetTestRouter(cmds BudgetCommander, qrys BudgetQuerier, resolver IdentityResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(fakeAuth("ext-user-1"))
	h := NewBudgetHandler(cmds, qrys, resolver)
	r.GET("/v1/budget", h.GetCurrentBudget)
	r.PUT("/v1/budget", h.UpdateBudget)
	return r
}

var aTestBudgetView = &models.BudgetView{
	ID: "bgt-aaaaaaaaaa", UserID: "usr-aaaaaaaaaa", Amount: 500,
}

func TestGetCurrentBudget(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		getFn          func(cqrs.GetCurrentBudgetQuery) (*query.BudgetOverview, error)
		expectedStatus int
	}{
		{
			name: "success - budget set",
			url:  "/v1/budget?accountId=acc-aaaaaaaaaa",
			getFn: func(q cqrs.GetCurrentBudgetQuery) (*query.BudgetOverview, error) {
				return &query.BudgetOverview{Budget: aTestBudgetView, CurrentExpenses: 123.45}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "success - budget never set",
			url:  "/v1/budget?accountId=acc-aaaaaaaaaa",
			getFn: func(q cqrs.GetCurrentBudgetQuery) (*query.BudgetOverview, error) {
				return &query.BudgetOverview{CurrentExpenses: 10}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - missing account id",
			url:            "/v1/budget",
			getFn:          nil,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qrys := &mockBudgetQuerier{getFn: tt.getFn}
			router := newBudgetTestRouter(&mockBudgetCommander{}, qrys, &mockResolver{})
			w := doRequest(router, http.MethodGet, tt.url, nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestGetCurrentBudgetNullBudget(t *testing.T) {
	qrys := &mockBudgetQuerier{getFn: func(q cqrs.GetCurrentBudgetQuery) (*query.BudgetOverview, error) {
		return &query.BudgetOverview{CurrentExpenses: 42.50}, nil
	}}
	router := newBudgetTestRouter(&mockBudgetCommander{}, qrys, &mockResolver{})
	w := doRequest(router, http.MethodGet, "/v1/budget?accountId=acc-aaaaaaaaaa", nil)

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(resp["budget"]) != "null" {
		t.Errorf("expected budget to serialize as null, got %s", resp["budget"])
	}
}

func TestUpdateBudget(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		upsertFn       func(cqrs.UpsertBudgetCommand) (*models.BudgetView, error)
		expectedStatus int
	}{
		{
			name: "success - upsert budget",
			body: map[string]interface{}{"amount": 500.0},
			upsertFn: func(cmd cqrs.UpsertBudgetCommand) (*models.BudgetView, error) {
				return aTestBudgetView, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - zero amount",
			body:           map[string]interface{}{"amount": 0},
			upsertFn:       nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - negative amount",
			body:           map[string]interface{}{"amount": -25},
			upsertFn:       nil,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := &mockBudgetCommander{upsertFn: tt.upsertFn}
			router := newBudgetTestRouter(cmds, &mockBudgetQuerier{}, &mockResolver{})
			w := doRequest(router, http.MethodPut, "/v1/budget", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusOK {
				var resp UpdateBudgetResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if !resp.Success || resp.Budget == nil {
					t.Errorf("[%s] expected success with budget payload, got %+v", tt.name, resp)
				}
			}
		})
	}
}
