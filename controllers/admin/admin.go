package adminControllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/store"
)

// GET /admin/users
func GetAllUsers(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.IsAdmin() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin access required."})
			return
		}
		c.JSON(http.StatusOK, s.Users())
	}
}

// GET /admin/dashboard
func GetDashboard(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.IsAdmin() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin access required."})
			return
		}

		revenue := 0.0
		orders := s.Orders()
		for _, o := range orders {
			revenue += o.Total
		}
		revenue = math.Round(revenue*100) / 100

		c.JSON(http.StatusOK, gin.H{
			"totalRevenue": revenue,
			"orderCount":   len(orders),
			"userCount":    len(s.Users()),
			"productCount": len(s.Products()),
		})
	}
}
