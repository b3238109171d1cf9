package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/logger"
	"github.com/ticoship/rate-service/internal/service"
)

// RequestLogger returns a middleware that logs HTTP request details in
// JSON format and, when an audit service is configured, persists them
// through its bounded worker pool.
func RequestLogger(audit service.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", ip).
			Str("user_agent", userAgent).
			Logger()

		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if audit != nil {
			audit.LogRequest(&model.RequestLog{
				Timestamp:  time.Now(),
				Level:      logLevelFor(statusCode),
				Message:    "HTTP request",
				RequestID:  requestID,
				Method:     method,
				Path:       path,
				StatusCode: statusCode,
				DurationMS: latency.Milliseconds(),
				IP:         ip,
				UserAgent:  userAgent,
			})
		}
	}
}

// logLevelFor returns the log level for an HTTP status code.
func logLevelFor(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
