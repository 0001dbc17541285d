package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/auth"
	productControllers "github.com/prithvi1320/StyleSphere/controllers/product"
	"github.com/prithvi1320/StyleSphere/store"
)

// SetupAuthRoutes registers the public /auth/* endpoints.
func SetupAuthRoutes(r *gin.Engine, s *store.Store) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(s)) // POST /auth/register
		authGroup.POST("/login", auth.Login(s))       // POST /auth/login
		authGroup.POST("/logout", auth.Logout(s))     // POST /auth/logout
	}
}

// SetupCatalogRoutes registers the public browse endpoints.
func SetupCatalogRoutes(r *gin.Engine, s *store.Store) {
	r.GET("/products", productControllers.GetProducts(s))        // GET /products
	r.GET("/products/:id", productControllers.GetProductByID(s)) // GET /products/:id
	r.GET("/categories", productControllers.GetCategories(s))    // GET /categories
}
