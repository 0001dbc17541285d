package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/store"
)

// RequireStoreReady rejects requests until the snapshot load has resolved,
// so a not-yet-loaded session can never be mistaken for a signed-out one.
func RequireStoreReady(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store is still loading"})
			c.Abort()
			return
		}
		c.Next()
	}
}
