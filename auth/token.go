package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/prithvi1320/StyleSphere/models"
)

// IssueToken signs a 24h session token for the frontend to present on
// /user and /admin routes. The store remains the authority on the session;
// this is only the wire credential.
func IssueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
