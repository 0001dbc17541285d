package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prithvi1320/StyleSphere/store"
)

// StoreError writes a store failure as JSON, mapping the failure kind to a
// status code. The message is already human-readable.
func StoreError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch store.KindOf(err) {
	case store.KindValidation:
		status = http.StatusBadRequest
	case store.KindConflict:
		status = http.StatusConflict
	case store.KindAuth:
		status = http.StatusUnauthorized
	case store.KindNotFound:
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
