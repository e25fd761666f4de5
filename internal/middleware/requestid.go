package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/requestdata"
)

// RequestID tags every request with a uuid, stores it in the request
// context, and logs one completion line per request.
func RequestID(log *logger.Logger) gin.HandlerFunc {
	requestLogger := log.With("Middleware", "RequestID")
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{RequestID: id})
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", id)

		start := time.Now()
		c.Next()

		requestLogger.Info("request completed",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
