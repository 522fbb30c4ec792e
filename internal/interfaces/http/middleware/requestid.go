package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadloft/internal/shared/constants"
)

// RequestID propagates the inbound X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
