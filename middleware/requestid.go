package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every response so frontend reports can be matched to logs.
func RequestID(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("request_id", id)
	c.Header("X-Request-ID", id)
	c.Next()
}
