package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resumeforge-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if draftID, ok := c.Get("draftId"); ok {
			fields["draft_id"] = draftID
		}
		if provider, ok := c.Get("aiProvider"); ok {
			fields["ai_provider"] = provider
		}

		telemetry.Info("request.complete", fields)
	}
}
