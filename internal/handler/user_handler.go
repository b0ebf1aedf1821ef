package handler

import (
	"errors"
	"net/http"

	"github.com/dinesh6383/Finance-tracking-App/internal/identity"
	"github.com/dinesh6383/Finance-tracking-App/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles identity resolution requests.
type UserHandler struct {
	resolver IdentityResolver
}

func NewUserHandler(resolver IdentityResolver) *UserHandler {
	return &UserHandler{resolver: resolver}
}

// Me returns the caller's local user record, provisioning it from the
// identity provider on first sight.
func (h *UserHandler) Me(c *gin.Context) {
	externalID, ok := middleware.GetExternalID(c)
	if !ok {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.resolver.Resolve(c.Request.Context(), externalID)
	if err != nil {
		if errors.Is(err, identity.ErrProviderUnavailable) {
			middleware.RespondWithError(c, http.StatusServiceUnavailable, "Identity provider unavailable")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve user")
		return
	}

	c.JSON(http.StatusOK, user)
}
