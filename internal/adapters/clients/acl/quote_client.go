package acl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/jsamuelsen/favqs-quotes/internal/domain"
	"github.com/jsamuelsen/favqs-quotes/internal/platform/logging"
)

const (
	quotesPath = "/quotes"
	qotdPath   = "/qotd"
)

// QuoteClientConfig contains configuration for the quote client.
type QuoteClientConfig struct {
	// Requests performs the authorized calls.
	Requests *RequestClient

	// Logger is the structured logger.
	Logger *slog.Logger
}

// QuoteClient implements ports.QuoteSource against the FavQs API.
type QuoteClient struct {
	requests *RequestClient
	logger   *slog.Logger
}

// NewQuoteClient creates a new quote client adapter.
// Panics if Requests is nil. Defaults logger to slog.Default() if nil.
func NewQuoteClient(cfg QuoteClientConfig) *QuoteClient {
	if cfg.Requests == nil {
		panic("QuoteClient: Requests is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteClient{
		requests: cfg.Requests,
		logger:   logger,
	}
}

// FetchQuotesPage fetches one page of quotes from /quotes?page=<page>.
// A zero page means domain.DefaultPage; any other value is sent as given.
// Implements ports.QuoteSource.
func (c *QuoteClient) FetchQuotesPage(ctx context.Context, page int) (domain.QuotePage, error) {
	if page == 0 {
		page = domain.DefaultPage
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	path := quotesPath + "?" + query.Encode()

	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))
	c.logger.DebugContext(ctx, "fetching quotes page", slog.Int("page", page))

	var result domain.QuotePage
	if err := c.requests.GetJSON(ctx, path, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// FetchQotd fetches the quote of the day from /qotd.
// Implements ports.QuoteSource.
func (c *QuoteClient) FetchQotd(ctx context.Context) (domain.QuoteOfTheDay, error) {
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", qotdPath))
	c.logger.DebugContext(ctx, "fetching quote of the day")

	var result domain.QuoteOfTheDay
	if err := c.requests.GetJSON(ctx, qotdPath, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *QuoteClient) Name() string {
	return c.requests.ServiceName()
}

// Check verifies the API answers an authorized request.
// Implements ports.HealthChecker.
func (c *QuoteClient) Check(ctx context.Context) error {
	_, err := c.FetchQotd(ctx)
	return err
}
