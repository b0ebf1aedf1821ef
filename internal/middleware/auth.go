package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ctxExternalID = "externalId"

// Claims are the fields of an identity-provider bearer token this service
// relies on. Subject (RegisteredClaims.Subject) is the external user id.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the identity provider's bearer token and stashes
// the external identity into the request context. Requests without a
// verified identity are rejected before reaching any handler.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header required",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxExternalID, claims.Subject)
		c.Next()
	}
}

// GetExternalID returns the verified identity-provider user id for the
// request, if any.
func GetExternalID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ctxExternalID)
	if !exists {
		return "", false
	}
	return id.(string), true
}
