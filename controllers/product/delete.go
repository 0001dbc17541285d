package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/controllers/respond"
	"github.com/prithvi1320/StyleSphere/store"
)

// DELETE /admin/products/:id
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		if err := s.DeleteProduct(id); err != nil {
			respond.StoreError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
