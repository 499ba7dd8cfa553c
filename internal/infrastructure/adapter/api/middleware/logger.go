package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// Logger logs one line per request. Successful requests to quietPaths, such
// as probes, are not logged.
func Logger(logger coreport.Logger, quietPaths ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		if status < http.StatusBadRequest && slices.Contains(quietPaths, path) {
			return
		}

		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       path,
			"route":      c.FullPath(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": coreport.RequestIDFromContext(c.Request.Context()),
			"bytes":      c.Writer.Size(),
		}
		if actor := coreport.ActorFromContext(c.Request.Context()); actor.UserID != nil {
			fields["actor_id"] = *actor.UserID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Warn("Request failed", fields)
		case status == http.StatusConflict:
			// lost races and duplicate references are worth seeing at info level
			logger.Info("Request conflicted", fields)
		case status >= http.StatusBadRequest:
			logger.Debug("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
