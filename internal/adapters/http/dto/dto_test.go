package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/favqs-quotes/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewErrorResponse(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		message string
		want    *ErrorResponse
	}{
		{
			name:    "basic error response",
			code:    ErrorCodeNotFound,
			message: "resource not found",
			want: &ErrorResponse{
				Error: ErrorDetail{
					Code:    ErrorCodeNotFound,
					Message: "resource not found",
				},
			},
		},
		{
			name:    "validation error response",
			code:    ErrorCodeValidation,
			message: "invalid input",
			want: &ErrorResponse{
				Error: ErrorDetail{
					Code:    ErrorCodeValidation,
					Message: "invalid input",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewErrorResponse(tt.code, tt.message)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestNewErrorResponseWithDetails tests creating an error response with details.
func TestNewErrorResponseWithDetails(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		message string
		details map[string]string
		want    *ErrorResponse
	}{
		{
			name:    "error with details",
			code:    ErrorCodeValidation,
			message: "validation failed",
			details: map[string]string{
				"email": "must be a valid email",
				"name":  "this field is required",
			},
			want: &ErrorResponse{
				Error: ErrorDetail{
					Code:    ErrorCodeValidation,
					Message: "validation failed",
					Details: map[string]string{
						"email": "must be a valid email",
						"name":  "this field is required",
					},
				},
			},
		},
		{
			name:    "error with empty details",
			code:    ErrorCodeValidation,
			message: "bad request",
			details: map[string]string{},
			want: &ErrorResponse{
				Error: ErrorDetail{
					Code:    ErrorCodeValidation,
					Message: "bad request",
					Details: map[string]string{},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewErrorResponseWithDetails(tt.code, tt.message, tt.details)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestWithTraceID tests adding trace ID to error response.
func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		response *ErrorResponse
		traceID  string
		want     string
	}{
		{
			name:     "add trace ID",
			response: NewErrorResponse(ErrorCodeInternal, "internal error"),
			traceID:  "trace-123",
			want:     "trace-123",
		},
		{
			name:     "empty trace ID",
			response: NewErrorResponse(ErrorCodeNotFound, "not found"),
			traceID:  "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.response.WithTraceID(tt.traceID)
			assert.Equal(t, tt.want, got.TraceID)
			assert.Same(t, tt.response, got) // Should return same instance
		})
	}
}

// TestHTTPStatusFromCode tests mapping error codes to HTTP status codes.
func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{name: "not found", code: ErrorCodeNotFound, want: http.StatusNotFound},
		{name: "method not allowed", code: ErrorCodeMethodNotAllowed, want: http.StatusMethodNotAllowed},
		{name: "validation error", code: ErrorCodeValidation, want: http.StatusBadRequest},
		{name: "upstream", code: ErrorCodeUpstream, want: http.StatusBadGateway},
		{name: "configuration", code: ErrorCodeConfiguration, want: http.StatusInternalServerError},
		{name: "timeout", code: ErrorCodeTimeout, want: http.StatusGatewayTimeout},
		{name: "internal error", code: ErrorCodeInternal, want: http.StatusInternalServerError},
		{name: "unknown code defaults to internal error", code: "UNKNOWN_CODE", want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails map[string]string
	}{
		{
			name:       "nil error",
			err:        nil,
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing token",
			err:         fmt.Errorf("fetching qotd: %w", domain.NewConfigurationError("FAVQS_TOKEN")),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeConfiguration,
			wantMessage: "fetching qotd: FAVQS_TOKEN is not set",
		},
		{
			name:        "upstream failure keeps message",
			err:         domain.NewRequestError(401, "", "Unauthorized"),
			wantStatus:  http.StatusBadGateway,
			wantCode:    ErrorCodeUpstream,
			wantMessage: "HTTP 401: Unauthorized",
		},
		{
			name:        "validation with field",
			err:         domain.NewValidationErrorWithValue("page", "must be greater than or equal to 1", 0),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "validation failed for page: must be greater than or equal to 1",
			wantDetails: map[string]string{"page": "must be greater than or equal to 1"},
		},
		{
			name:        "validation without field",
			err:         domain.NewValidationErrorWithValue("", "bad input", nil),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "validation failed: bad input",
		},
		{
			name:        "request context deadline",
			err:         fmt.Errorf("fetching quotes page: %w", context.DeadlineExceeded),
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    ErrorCodeTimeout,
			wantMessage: "the quotes API did not answer in time",
		},
		{
			name:        "client timeout",
			err:         &url.Error{Op: "Get", URL: "https://favqs.com/api/qotd", Err: &net.DNSError{Err: "i/o timeout", IsTimeout: true}},
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    ErrorCodeTimeout,
			wantMessage: "the quotes API did not answer in time",
		},
		{
			name:        "unknown error is hidden",
			err:         errors.New("dial tcp: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeInternal,
			wantMessage: "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := FromDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)

			if tt.err == nil {
				assert.Nil(t, resp)
				return
			}

			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMessage, resp.Error.Message)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
		})
	}
}

// TestGetTraceID tests extracting trace ID from gin context.
func TestGetTraceID(t *testing.T) {
	tests := []struct {
		name         string
		setupContext func(*gin.Context)
		want         string
	}{
		{
			name: "trace ID in context",
			setupContext: func(c *gin.Context) {
				c.Set(TraceIDKey, "context-trace-123")
			},
			want: "context-trace-123",
		},
		{
			name: "request ID header",
			setupContext: func(c *gin.Context) {
				c.Request.Header.Set("X-Request-ID", "header-trace-456")
			},
			want: "header-trace-456",
		},
		{
			name: "trace ID in context takes precedence",
			setupContext: func(c *gin.Context) {
				c.Set(TraceIDKey, "context-trace-123")
				c.Request.Header.Set("X-Request-ID", "header-trace-456")
			},
			want: "context-trace-123",
		},
		{
			name:         "no trace ID",
			setupContext: func(c *gin.Context) {},
			want:         "",
		},
		{
			name: "trace ID in context but wrong type",
			setupContext: func(c *gin.Context) {
				c.Set(TraceIDKey, 12345)
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			tt.setupContext(c)

			assert.Equal(t, tt.want, GetTraceID(c))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		traceID        string
		wantStatus     int
		wantCode       string
		wantMessageKey string
	}{
		{
			name:           "configuration error",
			err:            domain.NewConfigurationError("FAVQS_TOKEN"),
			traceID:        "trace-123",
			wantStatus:     http.StatusInternalServerError,
			wantCode:       ErrorCodeConfiguration,
			wantMessageKey: "FAVQS_TOKEN is not set",
		},
		{
			name:           "request error",
			err:            domain.NewRequestError(503, "down for maintenance", "Service Unavailable"),
			traceID:        "trace-456",
			wantStatus:     http.StatusBadGateway,
			wantCode:       ErrorCodeUpstream,
			wantMessageKey: "down for maintenance",
		},
		{
			name:           "validation error",
			err:            domain.NewValidationErrorWithValue("page", "must be a number", "abc"),
			traceID:        "trace-789",
			wantStatus:     http.StatusBadRequest,
			wantCode:       ErrorCodeValidation,
			wantMessageKey: "page",
		},
		{
			name:           "internal error",
			err:            errors.New("unexpected error"),
			traceID:        "trace-ghi",
			wantStatus:     http.StatusInternalServerError,
			wantCode:       ErrorCodeInternal,
			wantMessageKey: "internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set(TraceIDKey, tt.traceID)

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			assert.Equal(t, tt.wantCode, response.Error.Code)
			assert.Contains(t, response.Error.Message, tt.wantMessageKey)
			assert.Equal(t, tt.traceID, response.TraceID)
		})
	}
}

func TestHandleError_NilWritesNothing(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleError(c, nil)

	assert.Empty(t, w.Body.String())
}

func TestPageRequest_GetPage(t *testing.T) {
	tests := []struct {
		name string
		page int
		want int
	}{
		{name: "absent page uses default", page: 0, want: 1},
		{name: "explicit page", page: 3, want: 3},
		{name: "negative page uses default", page: -2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PageRequest{Page: tt.page}
			assert.Equal(t, tt.want, p.GetPage())
		})
	}
}

func TestPageRequest_BindQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantErr   bool
		wantField string
	}{
		{name: "no page", query: "", wantPage: 1},
		{name: "page 2", query: "?page=2", wantPage: 2},
		{name: "negative page fails validation", query: "?page=-1", wantErr: true, wantField: "page"},
		{name: "non-numeric page fails binding", query: "?page=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/quotes"+tt.query, nil)

			var req PageRequest
			err := BindQueryAndValidate(c, &req)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.wantPage, req.GetPage())

				return
			}

			require.Error(t, err)

			if tt.wantField != "" {
				assert.Contains(t, ValidationErrors(err), tt.wantField)
			}
		})
	}
}

func TestValidator(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}

func TestParamName(t *testing.T) {
	type params struct {
		Page   int    `form:"page" json:"p"`
		Author string `json:"author,omitempty"`
		Hidden string `form:"-"`
		Plain  string
	}

	typ := reflect.TypeFor[params]()

	tests := []struct {
		field string
		want  string
	}{
		{field: "Page", want: "page"},
		{field: "Author", want: "author"},
		{field: "Hidden", want: ""},
		{field: "Plain", want: "Plain"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			fld, ok := typ.FieldByName(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.want, paramName(fld))
		})
	}
}

func TestValidate(t *testing.T) {
	type filter struct {
		Page   int    `form:"page"   validate:"omitempty,gte=1,lte=1000"`
		Filter string `form:"filter" validate:"omitempty,oneof=author tag user"`
	}

	tests := []struct {
		name       string
		input      filter
		wantFields map[string]string
	}{
		{
			name:  "zero values pass",
			input: filter{},
		},
		{
			name:  "in range",
			input: filter{Page: 7, Filter: "tag"},
		},
		{
			name:       "page too large",
			input:      filter{Page: 1001},
			wantFields: map[string]string{"page": "must be less than or equal to 1000"},
		},
		{
			name:       "negative page and unknown filter",
			input:      filter{Page: -1, Filter: "mood"},
			wantFields: map[string]string{"page": "must be greater than or equal to 1", "filter": "must be one of: author tag user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.input)

			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			assert.True(t, IsValidationError(err))
			assert.False(t, IsBindingError(err))
			assert.Equal(t, tt.wantFields, ValidationErrors(err))
		})
	}
}

func TestBindQueryAndValidate_Errors(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantBinding bool
	}{
		{name: "float page", query: "?page=1.5", wantBinding: true},
		{name: "word page", query: "?page=two", wantBinding: true},
		{name: "zero page is absent", query: "?page=0"},
		{name: "out of range page", query: "?page=-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/quotes"+tt.query, http.NoBody)

			var req PageRequest
			err := BindQueryAndValidate(c, &req)

			if tt.wantBinding {
				require.ErrorIs(t, err, ErrBinding)
				assert.False(t, IsValidationError(err))
				assert.Empty(t, ValidationErrors(err))

				return
			}

			if tt.query == "?page=0" {
				require.NoError(t, err)
				assert.Equal(t, domain.DefaultPage, req.GetPage())

				return
			}

			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, "must be greater than or equal to 1", ValidationErrors(err)["page"])
		})
	}
}

func TestValidationErrors_NonValidatorError(t *testing.T) {
	assert.Empty(t, ValidationErrors(nil))
	assert.Empty(t, ValidationErrors(errors.New("boom")))
	assert.False(t, IsValidationError(errors.New("boom")))
}

func TestValidationMessage_UnknownTag(t *testing.T) {
	type upper struct {
		Author string `form:"author" validate:"uppercase"`
	}

	err := Validate(&upper{Author: "horace"})
	require.Error(t, err)

	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "failed validation: uppercase", validationMessage(fieldErrs[0]))
	assert.Equal(t, map[string]string{"author": "failed validation: uppercase"}, ValidationErrors(err))
}
