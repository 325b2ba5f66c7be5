// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrConfiguration, ErrRequest)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/favqs-quotes/internal/domain"
)

// QuoteSource is the upstream quotes API as seen by the application layer.
//
// Implementations make exactly one attempt per call. They return
// domain.ErrConfiguration when the API token is missing (before any network
// call) and domain.ErrRequest for non-2xx answers. Transport and decode
// failures are returned wrapped but otherwise unchanged.
type QuoteSource interface {
	// FetchQuotesPage returns one page of quotes. A zero page means
	// domain.DefaultPage; other values are sent to the API as given.
	FetchQuotesPage(ctx context.Context, page int) (domain.QuotePage, error)

	// FetchQotd returns the quote of the day.
	FetchQotd(ctx context.Context) (domain.QuoteOfTheDay, error)
}
