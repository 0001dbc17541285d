package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/controllers/respond"
	"github.com/prithvi1320/StyleSphere/store"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/register
func Register(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := s.Register(input.Name, input.Email, input.Password)
		if err != nil {
			respond.StoreError(c, err)
			return
		}

		token, err := IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
	}
}

// POST /auth/login
func Login(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := s.Login(input.Email, input.Password)
		if err != nil {
			respond.StoreError(c, err)
			return
		}

		token, err := IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// POST /auth/logout
func Logout(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}
