package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/ai"
	adminControllers "github.com/prithvi1320/StyleSphere/controllers/admin"
	aiControllers "github.com/prithvi1320/StyleSphere/controllers/ai"
	orderControllers "github.com/prithvi1320/StyleSphere/controllers/order"
	productControllers "github.com/prithvi1320/StyleSphere/controllers/product"
	"github.com/prithvi1320/StyleSphere/middleware"
	"github.com/prithvi1320/StyleSphere/store"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. The token middleware
// authenticates the caller; the admin role itself is enforced by the store
// on every operation.
func SetupAdminRoutes(r *gin.Engine, s *store.Store, generator ai.Generator, hub *orderControllers.Hub) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Back-office ────────────────
		adminGroup.GET("/users", adminControllers.GetAllUsers(s))      // GET /admin/users
		adminGroup.GET("/dashboard", adminControllers.GetDashboard(s)) // GET /admin/dashboard

		// ──────────────── Products ────────────────
		adminGroup.POST("/products", productControllers.CreateProduct(s))               // POST /admin/products
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(s))         // DELETE /admin/products/:id
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(s)) // GET /admin/products/export

		// ──────────────── Orders ────────────────
		adminGroup.GET("/orders", orderControllers.GetAllOrders(s))                      // GET /admin/orders
		adminGroup.PUT("/orders/:id/status", orderControllers.UpdateOrderStatus(s, hub)) // PUT /admin/orders/:id/status
		adminGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(s))        // GET /admin/orders/export
		adminGroup.GET("/orders/ws", orderControllers.OrderWebSocketHandler(s, hub))     // GET /admin/orders/ws

		// ──────────────── AI tooling ────────────────
		adminGroup.POST("/ai/description", aiControllers.GenerateDescription(s, generator)) // POST /admin/ai/description
	}
}
