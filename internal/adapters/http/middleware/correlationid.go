package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/favqs-quotes/internal/platform/logging"
)

// HeaderCorrelationID is the header carrying the correlation ID. Unlike the
// request ID it is expected to be shared by every hop of one user action.
const HeaderCorrelationID = "X-Correlation-ID"

// CorrelationID returns middleware handling X-Correlation-ID the same way
// RequestID handles X-Request-ID.
func CorrelationID() gin.HandlerFunc {
	return idPropagation{
		header: HeaderCorrelationID,
		key:    ContextKeyCorrelationID,
		store:  ContextWithCorrelationID,
		tagLog: logging.WithCorrelationID,
	}.handler()
}

// GetCorrelationID returns the correlation ID for c, or "" outside the middleware.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}
