package handler

import (
	"context"
	"net/http"

	"github.com/dinesh6383/Finance-tracking-App/internal/cqrs"
	"github.com/dinesh6383/Finance-tracking-App/internal/middleware"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/gin-gonic/gin"
)

// DashboardQuerier defines the read-side operations used by
// DashboardHandler.
type DashboardQuerier interface {
	GetDashboardData(ctx context.Context, q cqrs.GetDashboardQuery) (*models.DashboardView, error)
}

// DashboardHandler serves the dashboard read model.
type DashboardHandler struct {
	queries  DashboardQuerier
	resolver IdentityResolver
}

func NewDashboardHandler(queries DashboardQuerier, resolver IdentityResolver) *DashboardHandler {
	return &DashboardHandler{queries: queries, resolver: resolver}
}

func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	user := currentUser(c, h.resolver)
	if user == nil {
		return
	}

	view, err := h.queries.GetDashboardData(c.Request.Context(), cqrs.GetDashboardQuery{UserID: user.ID})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch dashboard")
		return
	}

	transactions := view.Transactions
	if transactions == nil {
		transactions = []models.TransactionView{}
	}
	c.JSON(http.StatusOK, transactions)
}
