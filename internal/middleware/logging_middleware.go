package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cinelog/cinelog-backend/pkg/logger"
)

const RequestIDKey = "request_id"

// LoggingMiddleware tags each request with an id and logs the outcome
// with latency. 5xx responses log at error level.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]interface{}{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": latency.Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if userID, ok := GetUserID(c); ok {
			fields["user_id"] = userID
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request failed", nil, fields)
		case c.Writer.Status() >= 400:
			logger.Warn("request rejected", fields)
		default:
			logger.Info("request completed", fields)
		}
	}
}
