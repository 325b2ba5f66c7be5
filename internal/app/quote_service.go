// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/favqs-quotes/internal/domain"
	"github.com/jsamuelsen/favqs-quotes/internal/platform/logging"
	"github.com/jsamuelsen/favqs-quotes/internal/ports"
)

// Operation names used in logs and metrics.
const (
	OperationGetPage = "get_page"
	OperationGetQotd = "get_qotd"
)

// QuoteService exposes the quote queries to the adapters. It logs each call
// and hands out one QuoteTracker per UI context.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	source  ports.QuoteSource
	logger  *slog.Logger
	metrics *TrackerMetrics
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Source  ports.QuoteSource
	Logger  *slog.Logger
	Metrics *TrackerMetrics // optional
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if Source is nil. Defaults logger to slog.Default() if nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Source == nil {
		panic("QuoteService: Source is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		source:  cfg.Source,
		logger:  logger.With(slog.String("component", "app.QuoteService")),
		metrics: cfg.Metrics,
	}
}

// FetchQuotesPage returns one page of quotes or the upstream error unchanged.
// Implements ports.QuoteSource.
func (s *QuoteService) FetchQuotesPage(ctx context.Context, page int) (domain.QuotePage, error) {
	s.logger.DebugContext(ctx, "fetching quotes page", slog.Int("page", page))

	result, err := s.source.FetchQuotesPage(ctx, page)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to fetch quotes page",
			slog.Int("page", page),
			slog.Any("error", err),
		)

		return nil, err
	}

	return result, nil
}

// FetchQotd returns the quote of the day or the upstream error unchanged.
// Implements ports.QuoteSource.
func (s *QuoteService) FetchQotd(ctx context.Context) (domain.QuoteOfTheDay, error) {
	s.logger.DebugContext(ctx, "fetching quote of the day")

	result, err := s.source.FetchQotd(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to fetch quote of the day", slog.Any("error", err))

		return nil, err
	}

	return result, nil
}

// NewTracker returns a fresh tracker bound to this service.
// Create one per UI context; trackers are never shared between requests.
func (s *QuoteService) NewTracker() *QuoteTracker {
	return &QuoteTracker{
		Tracker: NewTracker(),
		service: s,
	}
}

// QuoteTracker binds the two quote queries to a Tracker.
// Its methods never return errors: failures land in State().Error.
type QuoteTracker struct {
	*Tracker

	service *QuoteService
}

// GetPage fetches one page of quotes under the tracker.
// Returns nil and false on failure.
func (q *QuoteTracker) GetPage(ctx context.Context, page int) (domain.QuotePage, bool) {
	ctx = logging.WithOperation(ctx, OperationGetPage)

	result, ok := Run(ctx, q.Tracker, func(ctx context.Context) (domain.QuotePage, error) {
		return q.service.FetchQuotesPage(ctx, page)
	})
	q.service.metrics.observe(OperationGetPage, ok)

	return result, ok
}

// GetQotd fetches the quote of the day under the tracker.
// Returns nil and false on failure.
func (q *QuoteTracker) GetQotd(ctx context.Context) (domain.QuoteOfTheDay, bool) {
	ctx = logging.WithOperation(ctx, OperationGetQotd)

	result, ok := Run(ctx, q.Tracker, q.service.FetchQotd)
	q.service.metrics.observe(OperationGetQotd, ok)

	return result, ok
}
