package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/dinesh6383/Finance-tracking-App/internal/command"
	"github.com/dinesh6383/Finance-tracking-App/internal/cqrs"
	"github.com/dinesh6383/Finance-tracking-App/internal/middleware"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/dinesh6383/Finance-tracking-App/internal/repository"
	"github.com/dinesh6383/Finance-tracking-App/internal/utils"
	"github.com/gin-gonic/gin"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	CreateAccount(ctx context.Context, cmd cqrs.CreateAccountCommand) (*models.AccountView, error)
	SetDefaultAccount(ctx context.Context, cmd cqrs.SetDefaultAccountCommand) (*models.AccountView, error)
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	ListAccounts(ctx context.Context, q cqrs.ListAccountsQuery) ([]models.AccountView, error)
	GetAccountTransactions(ctx context.Context, q cqrs.GetAccountTransactionsQuery) (*models.AccountTransactionsView, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
	resolver IdentityResolver
}

type CreateAccountRequest struct {
	Name      string `json:"name" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=CURRENT SAVINGS"`
	Balance   string `json:"balance" validate:"required"`
	IsDefault bool   `json:"isDefault"`
}

type AccountResponse struct {
	Success bool                `json:"success"`
	Account *models.AccountView `json:"account"`
}

type ListAccountsResponse struct {
	Success  bool                 `json:"success"`
	Accounts []models.AccountView `json:"accounts"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier, resolver IdentityResolver) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries, resolver: resolver}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	user := currentUser(c, h.resolver)
	if user == nil {
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	view, err := h.commands.CreateAccount(c.Request.Context(), cqrs.CreateAccountCommand{
		UserID:    user.ID,
		Name:      req.Name,
		Type:      req.Type,
		Balance:   req.Balance,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		if errors.Is(err, command.ErrInvalidInput) {
			middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{Success: true, Account: view})
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	user := currentUser(c, h.resolver)
	if user == nil {
		return
	}

	views, err := h.queries.ListAccounts(c.Request.Context(), cqrs.ListAccountsQuery{UserID: user.ID})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list accounts")
		return
	}
	if views == nil {
		views = []models.AccountView{}
	}

	c.JSON(http.StatusOK, ListAccountsResponse{Success: true, Accounts: views})
}

func (h *AccountHandler) SetDefaultAccount(c *gin.Context) {
	accountID := c.Param("accountId")
	if !utils.ValidateAccountID(accountID) {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid account id")
		return
	}

	user := currentUser(c, h.resolver)
	if user == nil {
		return
	}

	view, err := h.commands.SetDefaultAccount(c.Request.Context(), cqrs.SetDefaultAccountCommand{
		AccountID:        accountID,
		RequestingUserID: user.ID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update default account")
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Success: true, Account: view})
}

func (h *AccountHandler) GetAccountTransactions(c *gin.Context) {
	accountID := c.Param("accountId")
	if !utils.ValidateAccountID(accountID) {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid account id")
		return
	}

	user := currentUser(c, h.resolver)
	if user == nil {
		return
	}

	view, err := h.queries.GetAccountTransactions(c.Request.Context(), cqrs.GetAccountTransactionsQuery{
		AccountID:        accountID,
		RequestingUserID: user.ID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch account")
		return
	}

	c.JSON(http.StatusOK, view)
}
