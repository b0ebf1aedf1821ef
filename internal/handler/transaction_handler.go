package handler

import (
	"context"
	"net/http"

	"github.com/dinesh6383/Finance-tracking-App/internal/cqrs"
	"github.com/dinesh6383/Finance-tracking-App/internal/middleware"
	"github.com/dinesh6383/Finance-tracking-App/internal/utils"
	"github.com/gin-gonic/gin"
)

// TransactionCommander defines the write-side operations used by
// TransactionHandler.
type TransactionCommander interface {
	BulkDelete(ctx context.Context, cmd cqrs.BulkDeleteTransactionsCommand) error
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	commands TransactionCommander
	resolver IdentityResolver
}

type BulkDeleteRequest struct {
	TransactionIDs []string `json:"transactionIds" validate:"required"`
}

// BulkDeleteResponse is the explicit success contract of the bulk delete
// operation. Message carries the failure text when Success is false.
type BulkDeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func NewTransactionHandler(commands TransactionCommander, resolver IdentityResolver) *TransactionHandler {
	return &TransactionHandler{commands: commands, resolver: resolver}
}

func (h *TransactionHandler) BulkDelete(c *gin.Context) {
	user := currentUser(c, h.resolver)
	if user == nil {
		return
	}

	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}
	for _, id := range req.TransactionIDs {
		if !utils.ValidateTransactionID(id) {
			middleware.RespondWithError(c, http.StatusBadRequest, "Invalid transaction id")
			return
		}
	}

	err := h.commands.BulkDelete(c.Request.Context(), cqrs.BulkDeleteTransactionsCommand{
		TransactionIDs:   req.TransactionIDs,
		RequestingUserID: user.ID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, BulkDeleteResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BulkDeleteResponse{Success: true})
}
