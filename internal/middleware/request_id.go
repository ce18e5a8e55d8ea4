package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-intent/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates the caller's request ID, or assigns one, and puts it
// on the request context for logging.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
