package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bookcatalog-api/pkg/logger"
)

// Logger writes one access-log line per request through the shared
// logger, correlated by request id. Log writes never block or fail the
// response.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("request completed", map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
		})
	}
}
