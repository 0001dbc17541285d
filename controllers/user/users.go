package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/controllers/respond"
	"github.com/prithvi1320/StyleSphere/store"
)

type UpdateProfileInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// GET /user/
func GetProfile(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.CurrentUser()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in first."})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user/
func UpdateProfile(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := s.UpdateProfile(input.Name, input.Email)
		if err != nil {
			respond.StoreError(c, err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// PUT /user/password
func UpdatePassword(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdatePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := s.UpdatePassword(input.CurrentPassword, input.NewPassword); err != nil {
			respond.StoreError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}
