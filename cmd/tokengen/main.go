// Command tokengen mints an HS256 bearer token for local development,
// shaped like the identity provider's tokens.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dinesh6383/Finance-tracking-App/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

func main() {
	subject := flag.String("sub", "ext-dev-user", "external user id (token subject)")
	email := flag.String("email", "dev@example.com", "email claim")
	name := flag.String("name", "Dev User", "name claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	now := time.Now()
	claims := middleware.Claims{
		Email: *email,
		Name:  *name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   *subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(*ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}
