package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/store"
)

type AddCartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  *int   `json:"quantity"` // defaults to 1 when omitted
}

type UpdateCartItemInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func cartPayload(s *store.Store) gin.H {
	return gin.H{
		"items":    s.Cart(),
		"count":    s.CartCount(),
		"subtotal": s.CartSubtotal(),
	}
}

// GET /user/cart
func GetCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartPayload(s))
	}
}

// POST /user/cart
func AddToCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		// Unknown products and non-positive quantities are silent no-ops,
		// matching the storefront's optimistic add button.
		s.AddToCart(input.ProductID, input.Size, input.Color, quantity)
		c.JSON(http.StatusOK, cartPayload(s))
	}
}

// PUT /user/cart/:index
func UpdateCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart index"})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s.UpdateCartItem(index, *input.Quantity)
		c.JSON(http.StatusOK, cartPayload(s))
	}
}

// DELETE /user/cart/:index
func RemoveCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart index"})
			return
		}

		s.RemoveCartItem(index)
		c.JSON(http.StatusOK, cartPayload(s))
	}
}

// DELETE /user/cart
func ClearCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.ClearCart()
		c.JSON(http.StatusOK, cartPayload(s))
	}
}
