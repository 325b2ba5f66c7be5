package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/favqs-quotes/internal/platform/logging"
)

// HeaderRequestID is the header carrying the per-request ID.
const HeaderRequestID = "X-Request-ID"

// RequestID returns middleware that adopts the caller's X-Request-ID, or
// generates a UUID when it is missing or malformed. The ID is echoed in the
// response, added to the context logger and forwarded to the quotes API.
func RequestID() gin.HandlerFunc {
	return idPropagation{
		header: HeaderRequestID,
		key:    ContextKeyRequestID,
		store:  ContextWithRequestID,
		tagLog: logging.WithRequestID,
	}.handler()
}

// GetRequestID returns the request ID for c, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}
