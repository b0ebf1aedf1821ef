package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func mintToken(t *testing.T, secret []byte, subject string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := Claims{
		Email: "jordan@example.com",
		Name:  "Jordan Park",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret), func(c *gin.Context) {
		id, ok := GetExternalID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"externalId": id})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "success - valid bearer token",
			authHeader:     "Bearer " + mintToken(t, testSecret, "ext-user-1", time.Hour),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unauthorized - missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unauthorized - malformed header",
			authHeader:     "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unauthorized - wrong signing key",
			authHeader:     "Bearer " + mintToken(t, []byte("other-secret"), "ext-user-1", time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unauthorized - expired token",
			authHeader:     "Bearer " + mintToken(t, testSecret, "ext-user-1", -time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unauthorized - empty subject",
			authHeader:     "Bearer " + mintToken(t, testSecret, "", time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter()
			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
