// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/favqs-quotes/internal/domain"
	"github.com/jsamuelsen/favqs-quotes/internal/platform/logging"
)

// TraceIDKey is the gin context key a trace ID may be stored under.
const TraceIDKey = "trace_id"

// requestIDHeader is consulted last when no trace ID is known.
const requestIDHeader = "X-Request-ID"

// internalErrorMessage hides the cause of unclassified failures from clients.
const internalErrorMessage = "an internal error occurred"

// ErrorResponse is the standard error envelope for all error responses.
// It provides a consistent structure for API error handling.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "UPSTREAM_ERROR", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details provides additional context about the error.
	// For validation errors, this contains field-level error messages.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	// ErrorCodeNotFound indicates the requested route or resource does not exist.
	ErrorCodeNotFound = "NOT_FOUND"

	// ErrorCodeMethodNotAllowed indicates the route exists but not for the request method.
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"

	// ErrorCodeValidation indicates request validation failed.
	ErrorCodeValidation = "VALIDATION_ERROR"

	// ErrorCodeConfiguration indicates a required setting (such as the API token) is missing.
	ErrorCodeConfiguration = "CONFIGURATION_ERROR"

	// ErrorCodeUpstream indicates the quotes API answered with a non-success status.
	ErrorCodeUpstream = "UPSTREAM_ERROR"

	// ErrorCodeInternal indicates an internal server error.
	ErrorCodeInternal = "INTERNAL_ERROR"

	// ErrorCodeTimeout indicates the request timed out.
	ErrorCodeTimeout = "TIMEOUT"
)

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodeValidation:
		return http.StatusBadRequest
	case ErrorCodeUpstream:
		return http.StatusBadGateway
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// FromDomainError maps a domain error to an HTTP status code and error response.
// Unknown errors are mapped to 500 with a generic message.
func FromDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsConfiguration(err):
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeConfiguration, err.Error())

	case domain.IsRequest(err):
		return http.StatusBadGateway, NewErrorResponse(ErrorCodeUpstream, err.Error())

	case isTimeout(err):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "the quotes API did not answer in time")

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, internalErrorMessage)
	}
}

// isTimeout reports deadline expiry, whether from a context or the client's own timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}

// GetTraceID returns the best identifier for correlating a response with logs:
// an explicit trace ID set on the context, the active span's trace ID, or the request ID header.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(TraceIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	return TraceIDFromRequest(c.Request)
}

// TraceIDFromRequest returns the active span's trace ID for r, or its
// X-Request-ID header when no span is recording.
func TraceIDFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}

	if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return r.Header.Get(requestIDHeader)
}

// HandleError writes the error envelope for err. Unclassified errors are logged
// with their full detail since clients only see a generic message.
func HandleError(c *gin.Context, err error) {
	status, resp := FromDomainError(err)
	if resp == nil {
		return
	}

	resp.WithTraceID(GetTraceID(c))

	if resp.Error.Code == ErrorCodeInternal {
		logging.FromContext(c.Request.Context()).Error("internal error",
			"error", err.Error(),
			"trace_id", resp.TraceID,
		)
	}

	c.JSON(status, resp)
}
