package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/prithvi1320/StyleSphere/controllers/cart"
	orderControllers "github.com/prithvi1320/StyleSphere/controllers/order"
	userControllers "github.com/prithvi1320/StyleSphere/controllers/user"
	wishlistControllers "github.com/prithvi1320/StyleSphere/controllers/wishlist"
	"github.com/prithvi1320/StyleSphere/middleware"
	"github.com/prithvi1320/StyleSphere/store"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, s *store.Store, hub *orderControllers.Hub) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetProfile(s))             // GET /user/
		userGroup.PUT("/", userControllers.UpdateProfile(s))          // PUT /user/
		userGroup.PUT("/password", userControllers.UpdatePassword(s)) // PUT /user/password

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(s))                 // GET /user/cart
			cartGroup.POST("/", cartControllers.AddToCart(s))              // POST /user/cart
			cartGroup.PUT("/:index", cartControllers.UpdateCartItem(s))    // PUT /user/cart/:index
			cartGroup.DELETE("/:index", cartControllers.RemoveCartItem(s)) // DELETE /user/cart/:index
			cartGroup.DELETE("/", cartControllers.ClearCart(s))            // DELETE /user/cart
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(s))                // GET /user/wishlist
			wishlistGroup.POST("/:product_id", wishlistControllers.ToggleWishlist(s)) // POST /user/wishlist/:product_id
		}

		// ──────────────── Orders ────────────────
		userGroup.POST("/orders", orderControllers.PlaceOrder(s, hub)) // POST /user/orders
		userGroup.GET("/orders", orderControllers.GetMyOrders(s))      // GET /user/orders
	}
}
