package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/dinesh6383/Finance-tracking-App/internal/command"
	"github.com/dinesh6383/Finance-tracking-App/internal/cqrs"
	"github.com/dinesh6383/Finance-tracking-App/internal/middleware"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/dinesh6383/Finance-tracking-App/internal/query"
	"github.com/dinesh6383/Finance-tracking-App/internal/utils"
	"github.com/gin-gonic/gin"
)

// BudgetCommander defines the write-side operations used by BudgetHandler.
type BudgetCommander interface {
	UpsertBudget(ctx context.Context, cmd cqrs.UpsertBudgetCommand) (*models.BudgetView, error)
}

// BudgetQuerier defines the read-side operations used by BudgetHandler.
type BudgetQuerier interface {
	GetCurrentBudget(ctx context.Context, q cqrs.GetCurrentBudgetQuery) (*query.BudgetOverview, error)
}

// BudgetHandler handles budget-related HTTP requests.
type BudgetHandler struct {
	commands BudgetCommander
	queries  BudgetQuerier
	resolver IdentityResolver
}

type UpdateBudgetRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type UpdateBudgetResponse struct {
	Success bool               `json:"success"`
	Budget  *models.BudgetView `json:"budget,omitempty"`
	Error   string             `json:"error,omitempty"`
}

func NewBudgetHandler(commands BudgetCommander, queries BudgetQuerier, resolver IdentityResolver) *BudgetHandler {
	return &BudgetHandler{commands: commands, queries: queries, resolver: resolver}
}

// GetCurrentBudget returns the caller's budget (null when never set) plus
// the current month's expense total for the account named in the query
// string.
func (h *BudgetHandler) GetCurrentBudget(c *gin.Context) {
	accountID := c.Query("accountId")
	if !utils.ValidateAccountID(accountID) {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid account id")
		return
	}

	user := currentUser(c, h.resolver)
	if user == nil {
		return
	}

	overview, err := h.queries.GetCurrentBudget(c.Request.Context(), cqrs.GetCurrentBudgetQuery{
		AccountID:        accountID,
		RequestingUserID: user.ID,
	})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch budget")
		return
	}

	c.JSON(http.StatusOK, overview)
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	user := currentUser(c, h.resolver)
	if user == nil {
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	budget, err := h.commands.UpsertBudget(c.Request.Context(), cqrs.UpsertBudgetCommand{
		UserID: user.ID,
		Amount: req.Amount,
	})
	if err != nil {
		if errors.Is(err, command.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, UpdateBudgetResponse{Success: false, Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, UpdateBudgetResponse{Success: false, Error: "Failed to update budget"})
		return
	}

	c.JSON(http.StatusOK, UpdateBudgetResponse{Success: true, Budget: budget})
}
