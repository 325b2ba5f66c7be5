// Package clients provides HTTP client adapters for downstream services.
package clients

import "errors"

// Construction errors. Request failures are returned wrapped as they come
// from net/http, so callers can still match context.Canceled and friends.
var (
	// ErrConfigRequired is returned by New when no Config is given.
	ErrConfigRequired = errors.New("config is required")

	// ErrServiceNameRequired is returned by New when Config.ServiceName is empty.
	ErrServiceNameRequired = errors.New("service name is required")
)
