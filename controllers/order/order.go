package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/controllers/respond"
	"github.com/prithvi1320/StyleSphere/models"
	"github.com/prithvi1320/StyleSphere/store"
)

type PlaceOrderInput struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// POST /user/orders
func PlaceOrder(s *store.Store, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := s.PlaceOrder(store.ShippingDetails{
			FullName: input.FullName,
			Address:  input.Address,
			City:     input.City,
			Zip:      input.Zip,
		})
		if err != nil {
			respond.StoreError(c, err)
			return
		}

		hub.Broadcast(OrderEvent{Type: "order_placed", Order: order})
		c.JSON(http.StatusCreated, gin.H{"orderId": order.ID, "order": order})
	}
}

// GET /user/orders
func GetMyOrders(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.CurrentUser()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in first."})
			return
		}
		c.JSON(http.StatusOK, s.OrdersForUser(user.ID))
	}
}

// GET /admin/orders
func GetAllOrders(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.IsAdmin() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin access required."})
			return
		}
		c.JSON(http.StatusOK, s.Orders())
	}
}

// PUT /admin/orders/:id/status
func UpdateOrderStatus(s *store.Store, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := s.UpdateOrderStatus(c.Param("id"), models.OrderStatus(input.Status))
		if err != nil {
			respond.StoreError(c, err)
			return
		}

		hub.Broadcast(OrderEvent{Type: "status_changed", Order: order})
		c.JSON(http.StatusOK, order)
	}
}
