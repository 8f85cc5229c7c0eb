package routes

import (
	"os"
	"strconv"
	"strings"
	"time"

	"stripe_testbed/internal/infrastructure/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// httpMetrics records request duration by route template, not raw path.
func httpMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		telemetry.RecordHTTPRequest(c.Request.Context(), c.Request.Method, route, strconv.Itoa(c.Writer.Status()), float64(time.Since(start).Milliseconds()))
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if strings.HasPrefix(c.Request.URL.Path, "/swagger") || c.Request.URL.Path == "/metrics" {
			return
		}
		telemetry.Info("[dashboard][http] request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
