// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import "context"

type contextKey string

// Keys under which the IDs are stored, both on the gin.Context and on the
// request's context.Context.
const (
	ContextKeyRequestID     = "request_id"
	ContextKeyCorrelationID = "correlation_id"
)

// RequestIDFromContext returns the request ID set by RequestID, or "".
// The quotes client forwards it to the upstream API.
func RequestIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, ContextKeyRequestID)
}

// CorrelationIDFromContext returns the correlation ID set by CorrelationID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, ContextKeyCorrelationID)
}

// ContextWithRequestID stores a request ID for outbound propagation.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey(ContextKeyRequestID), id)
}

// ContextWithCorrelationID stores a correlation ID for outbound propagation.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey(ContextKeyCorrelationID), id)
}

func idFromContext(ctx context.Context, key string) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(contextKey(key)).(string)

	return id
}
