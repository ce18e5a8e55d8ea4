package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voice-intent/pkg/response"
)

// quietPaths are probed constantly and stay out of the access log.
var quietPaths = map[string]bool{
	"/health":  true,
	"/ready":   true,
	"/live":    true,
	"/metrics": true,
}

// AccessLog writes one line per request through the service logger, so the
// request ID from RequestID is attached.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if quietPaths[c.Request.URL.Path] {
			return
		}

		ctx := c.Request.Context()
		status := c.Writer.Status()
		line := fmt.Sprintf("%s %s %d %s ip=%s", c.Request.Method, c.Request.URL.Path, status,
			time.Since(start).Round(time.Microsecond), c.ClientIP())

		switch {
		case status >= http.StatusInternalServerError:
			mw.l.Errorf(ctx, "http: %s errors=%s", line, c.Errors.String())
		case status >= http.StatusBadRequest:
			mw.l.Warnf(ctx, "http: %s", line)
		default:
			mw.l.Infof(ctx, "http: %s", line)
		}
	}
}

// Recovery turns a handler panic into a logged 500 in the standard envelope.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		mw.l.Errorf(c.Request.Context(), "http: panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		response.InternalError(c, fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
