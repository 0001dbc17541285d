package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/store"
)

// GET /products
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Products())
	}
}

// GET /products/:id
func GetProductByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := s.ProductByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /categories
func GetCategories(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Categories())
	}
}
