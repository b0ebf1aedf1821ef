package handler

import (
	"net/http"
	"testing"

	"github.com/dinesh6383/Finance-tracking-App/internal/identity"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/gin-gonic/gin"
)

func newUserTestRouter(resolver IdentityResolver, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if authed {
		r.Use(fakeAuth("ext-user-1"))
	}
	h := NewUserHandler(resolver)
	r.GET("/v1/me", h.Me)
	return r
}

func TestMe(t *testing.T) {
	tests := []struct {
		name           string
		resolveFn      func(externalID string) (*models.User, error)
		authed         bool
		expectedStatus int
	}{
		{
			name:           "success - provisions on first sight",
			resolveFn:      func(string) (*models.User, error) { return aTestUser, nil },
			authed:         true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "service unavailable - identity provider down",
			resolveFn:      func(string) (*models.User, error) { return nil, identity.ErrProviderUnavailable },
			authed:         true,
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "unauthorized - no identity in context",
			resolveFn:      nil,
			authed:         false,
			expectedStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newUserTestRouter(&mockResolver{resolveFn: tt.resolveFn}, tt.authed)
			w := doRequest(router, http.MethodGet, "/v1/me", nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
