package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/favqs-quotes/internal/platform/logging"
)

// HealthPathPrefix prefixes the health and metrics endpoints.
const HealthPathPrefix = "/-/"

// Logging returns middleware writing one entry per completed request.
// Requests whose path starts with one of skipPrefixes are not logged;
// with none given, health endpoints are skipped.
//
// Entries go to the request's context logger, which already carries the
// request, correlation and trace IDs. logger is used when the context has
// none of those IDs, e.g. when Logging is mounted without RequestID.
func Logging(logger *slog.Logger, skipPrefixes ...string) gin.HandlerFunc {
	if len(skipPrefixes) == 0 {
		skipPrefixes = []string{HealthPathPrefix}
	}

	return func(c *gin.Context) {
		if hasAnyPrefix(c.Request.URL.Path, skipPrefixes) {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.RequestURI()),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		}

		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		requestLogger(c, logger).LogAttrs(c.Request.Context(), levelForStatus(status), "request completed", attrs...)
	}
}

func requestLogger(c *gin.Context, fallback *slog.Logger) *slog.Logger {
	if fallback == nil || GetRequestID(c) != "" || GetCorrelationID(c) != "" {
		return logging.FromContext(c.Request.Context())
	}

	return fallback
}

// levelForStatus logs server errors at error, client errors at warn.
func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
