package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/favqs-quotes/internal/platform/logging"
)

// Timeout returns middleware that puts a deadline on the request context.
// Upstream calls made with that context are cancelled when it expires; the
// handler then reports the failure itself, so nothing is written here.
// A request that ran past its deadline is logged at warn.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logging.FromContext(ctx).WarnContext(ctx, "request deadline exceeded",
				slog.String("path", c.Request.URL.Path),
				slog.Duration("timeout", timeout),
				slog.Int("status", c.Writer.Status()),
			)
		}
	}
}
