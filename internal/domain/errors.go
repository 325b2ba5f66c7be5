// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration indicates a required setting is missing.
	// It is raised lazily, on the first operation that needs the setting.
	ErrConfiguration = errors.New("configuration error")

	// ErrRequest indicates the quotes API answered with a non-success status.
	ErrRequest = errors.New("request failed")
)

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// ConfigurationError reports a required setting that is absent or empty.
type ConfigurationError struct {
	// Setting is the externally visible name of the setting, e.g. "FAVQS_TOKEN".
	Setting string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return e.Setting + " is not set"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// NewConfigurationError creates a configuration error for the named setting.
func NewConfigurationError(setting string) error {
	return &ConfigurationError{Setting: setting}
}

// RequestError reports a non-2xx answer from the quotes API.
// Detail is the response body text, or the status text when the body was empty.
type RequestError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *RequestError) Unwrap() error {
	return ErrRequest
}

// NewRequestError creates a request error. body wins over statusText when non-empty.
func NewRequestError(statusCode int, body, statusText string) error {
	detail := body
	if detail == "" {
		detail = statusText
	}

	return &RequestError{StatusCode: statusCode, Detail: detail}
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsConfiguration checks if an error is a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsRequest checks if an error is a request error.
func IsRequest(err error) bool {
	return errors.Is(err, ErrRequest)
}
