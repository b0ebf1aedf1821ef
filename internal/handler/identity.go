// Package handler hosts the HTTP layer. Handlers bind and validate
// requests, resolve the caller, dispatch commands and queries, and map
// sentinel errors to HTTP statuses.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/dinesh6383/Finance-tracking-App/internal/identity"
	"github.com/dinesh6383/Finance-tracking-App/internal/middleware"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/dinesh6383/Finance-tracking-App/internal/repository"
	"github.com/gin-gonic/gin"
)

// IdentityResolver maps external identity-provider subjects to local users.
type IdentityResolver interface {
	Lookup(ctx context.Context, externalID string) (*models.User, error)
	Resolve(ctx context.Context, externalID string) (*models.User, error)
}

// currentUser resolves the authenticated caller to a local user record.
// Writes the error response and returns nil when resolution fails.
func currentUser(c *gin.Context, resolver IdentityResolver) *models.User {
	externalID, ok := middleware.GetExternalID(c)
	if !ok {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	user, err := resolver.Lookup(c.Request.Context(), externalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "User not found")
			return nil
		}
		if errors.Is(err, identity.ErrProviderUnavailable) {
			middleware.RespondWithError(c, http.StatusServiceUnavailable, "Identity provider unavailable")
			return nil
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve user")
		return nil
	}
	return user
}
