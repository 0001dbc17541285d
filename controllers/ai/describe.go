package aiControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/ai"
	"github.com/prithvi1320/StyleSphere/store"
)

type GenerateDescriptionInput struct {
	Keywords string `json:"keywords"`
}

// POST /admin/ai/description
//
// Takes a comma-separated keyword string (as typed in the product form) and
// returns generated marketing copy. Fire-and-forget: the result is never
// written to the store, the admin pastes it into the draft.
func GenerateDescription(s *store.Store, generator ai.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.IsAdmin() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin access required."})
			return
		}

		var input GenerateDescriptionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var keywords []string
		for _, k := range strings.Split(input.Keywords, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, k)
			}
		}
		if len(keywords) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide some keywords."})
			return
		}

		description, err := generator.GenerateDescription(c.Request.Context(), keywords)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate description. Please try again."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"description": description})
	}
}
