package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/controllers/respond"
	"github.com/prithvi1320/StyleSphere/models"
	"github.com/prithvi1320/StyleSphere/store"
)

// POST /admin/products
func CreateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft models.ProductDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := s.CreateProduct(draft)
		if err != nil {
			respond.StoreError(c, err)
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
