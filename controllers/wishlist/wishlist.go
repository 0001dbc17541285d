package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/store"
)

// GET /user/wishlist
func GetWishlist(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"productIds": s.Wishlist()})
	}
}

// POST /user/wishlist/:product_id
func ToggleWishlist(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")
		s.ToggleWishlist(productID)
		c.JSON(http.StatusOK, gin.H{
			"productId":  productID,
			"wishlisted": s.IsWishlisted(productID),
		})
	}
}
