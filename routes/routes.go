package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/ai"
	orderControllers "github.com/prithvi1320/StyleSphere/controllers/order"
	"github.com/prithvi1320/StyleSphere/middleware"
	"github.com/prithvi1320/StyleSphere/store"
)

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups against the injected store.
func SetupRoutes(r *gin.Engine, s *store.Store, generator ai.Generator, hub *orderControllers.Hub) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RequireStoreReady(s))

	// Public catalog + auth routes (no token required)
	SetupAuthRoutes(r, s)
	SetupCatalogRoutes(r, s)

	// User routes (JWT-protected)
	SetupUserRoutes(r, s, hub)

	// Admin routes (JWT-protected; role enforced by the store)
	SetupAdminRoutes(r, s, generator, hub)
}
