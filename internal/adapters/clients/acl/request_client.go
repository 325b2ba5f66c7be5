package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen/favqs-quotes/internal/adapters/clients"
	"github.com/jsamuelsen/favqs-quotes/internal/domain"
	"github.com/jsamuelsen/favqs-quotes/internal/platform/config"
	"github.com/jsamuelsen/favqs-quotes/internal/platform/logging"
)

const (
	// HeaderAuthorization carries the API token.
	HeaderAuthorization = "Authorization"

	// tokenPrefix is the FavQs token scheme: "Token token=<value>".
	tokenPrefix = "Token token="
)

// RequestClientConfig contains configuration for the request client.
type RequestClientConfig struct {
	// Client is the transport client. Its BaseURL is the API root.
	Client *clients.Client

	// Token is the API token. It may be empty; requests then fail with
	// a ConfigurationError naming TokenName.
	Token string

	// TokenName is the externally visible name of the token setting.
	// Defaults to FAVQS_TOKEN.
	TokenName string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// RequestClient performs authorized GET requests against the quotes API and
// decodes JSON responses. It holds no mutable state and is safe for concurrent use.
type RequestClient struct {
	client    *clients.Client
	token     string
	tokenName string
	logger    *slog.Logger
}

// NewRequestClient creates a request client.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewRequestClient(cfg RequestClientConfig) *RequestClient {
	if cfg.Client == nil {
		panic("RequestClient: Client is required")
	}

	tokenName := cfg.TokenName
	if tokenName == "" {
		tokenName = config.DefaultFavQsTokenName
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &RequestClient{
		client:    cfg.Client,
		token:     cfg.Token,
		tokenName: tokenName,
		logger:    logger,
	}
}

// ServiceName returns the name of the upstream service.
func (c *RequestClient) ServiceName() string {
	return c.client.ServiceName()
}

// Headers returns the authorization header set for one request.
// It fails with a *domain.ConfigurationError when the token is empty or blank.
func (c *RequestClient) Headers() (http.Header, error) {
	if strings.TrimSpace(c.token) == "" {
		return nil, domain.NewConfigurationError(c.tokenName)
	}

	header := make(http.Header, 1)
	header.Set(HeaderAuthorization, tokenPrefix+c.token)

	return header, nil
}

// GetJSON issues one authorized GET for path (relative to the API root, query
// string included) and decodes the JSON body into out.
//
// A missing token fails before any network call. A non-2xx answer fails with
// *domain.RequestError carrying the body text, or the status text when the
// body is empty.
func (c *RequestClient) GetJSON(ctx context.Context, path string, out any) error {
	header, err := c.Headers()
	if err != nil {
		return err
	}

	resp, err := c.client.Get(ctx, path, header)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Log(ctx, logging.LevelTrace, "response received",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if !isSuccess(resp.StatusCode) {
		reqErr := requestErrorFromResponse(resp)
		c.logger.WarnContext(ctx, "quotes API error",
			slog.String("path", path),
			slog.Int("status_code", resp.StatusCode),
			slog.Any("error", reqErr),
		)

		return reqErr
	}

	return decodeJSON(resp.Body, out)
}

// ErrTrailingData is returned when a response body holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON value")

// decodeJSON decodes exactly one JSON document from body into out.
// Anything but whitespace after it is an error.
func decodeJSON(body io.Reader, out any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrTrailingData
		}

		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
