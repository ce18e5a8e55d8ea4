package http

import (
	"github.com/gin-gonic/gin"

	"voice-intent/internal/middleware"
)

// RegisterRoutes mounts the intent endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	intents := rg.Group("/intent", mw.RateLimit())
	{
		intents.POST("/detect", h.Detect)
		intents.POST("/handle", h.Handle)
		intents.GET("/functions", h.Functions)
	}
}
