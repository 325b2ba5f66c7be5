//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/favqs-quotes/internal/adapters/clients"
	"github.com/jsamuelsen/favqs-quotes/internal/adapters/clients/acl"
	httpadapter "github.com/jsamuelsen/favqs-quotes/internal/adapters/http"
	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/proxy"
	"github.com/jsamuelsen/favqs-quotes/internal/app"
	"github.com/jsamuelsen/favqs-quotes/internal/platform/config"
	"github.com/jsamuelsen/favqs-quotes/internal/ports"
)

const (
	samplePageBody = `{"page":1,"last_page":false,"quotes":[` +
		`{"id":1,"body":"The only way out is through.","author":"Robert Frost"},` +
		`{"id":2,"body":"Simplicity is prerequisite for reliability.","author":"Edsger Dijkstra"}]}`

	sampleQotdBody = `{"qotd_date":"2026-10-19T00:00:00.000+00:00",` +
		`"quote":{"id":7,"body":"Well begun is half done.","author":"Aristotle"}}`
)

// cannedResponse is what the fake quotes API answers for one path.
type cannedResponse struct {
	status int
	body   string
	delay  time.Duration
}

// receivedRequest is one request seen by the fake quotes API.
type receivedRequest struct {
	Method        string
	URI           string
	Authorization string
	RequestID     string
}

// fakeFavQs is an in-process stand-in for the quotes API.
type fakeFavQs struct {
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]cannedResponse
	received  []receivedRequest
}

func newFakeFavQs(t *testing.T) *fakeFavQs {
	t.Helper()

	f := &fakeFavQs{
		responses: map[string]cannedResponse{
			"/quotes": {status: http.StatusOK, body: samplePageBody},
			"/qotd":   {status: http.StatusOK, body: sampleQotdBody},
		},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeFavQs) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.received = append(f.received, receivedRequest{
		Method:        r.Method,
		URI:           r.URL.RequestURI(),
		Authorization: r.Header.Get("Authorization"),
		RequestID:     r.Header.Get("X-Request-ID"),
	})
	resp, ok := f.responses[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if resp.delay > 0 {
		select {
		case <-time.After(resp.delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

// respond replaces the canned response for path.
func (f *fakeFavQs) respond(path string, resp cannedResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.responses[path] = resp
}

// requests returns a copy of the requests seen so far.
func (f *fakeFavQs) requests() []receivedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]receivedRequest(nil), f.received...)
}

func (f *fakeFavQs) URL() string {
	return f.server.URL
}

// stackOptions tunes the in-process service.
type stackOptions struct {
	token   string
	timeout time.Duration
	proxy   bool
}

// newQuoteClient builds the real client chain against baseURL.
func newQuoteClient(t *testing.T, baseURL string, opts stackOptions) *acl.QuoteClient {
	t.Helper()

	timeout := opts.timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	transport, err := clients.New(&clients.Config{
		BaseURL:     baseURL,
		ServiceName: "favqs",
		Timeout:     timeout,
		Logger:      quietLogger(),
	})
	if err != nil {
		t.Fatalf("creating transport client: %v", err)
	}

	requests := acl.NewRequestClient(acl.RequestClientConfig{
		Client:    transport,
		Token:     opts.token,
		TokenName: config.DefaultFavQsTokenName,
		Logger:    quietLogger(),
	})

	return acl.NewQuoteClient(acl.QuoteClientConfig{
		Requests: requests,
		Logger:   quietLogger(),
	})
}

// newStack wires the full service against the given quotes API and serves it.
func newStack(t *testing.T, upstreamURL string, opts stackOptions) *httptest.Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	quoteClient := newQuoteClient(t, upstreamURL, opts)

	registry := ports.NewHealthRegistry()
	if err := registry.Register(quoteClient); err != nil {
		t.Fatalf("registering health check: %v", err)
	}

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Source: quoteClient,
		Logger: quietLogger(),
	})

	engine := gin.New()
	cfg := httpadapter.NewDefaultRouterConfig(
		quietLogger(),
		&config.AppConfig{Name: "favqs-quotes", Version: "test", Environment: "test"},
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now")),
		handlers.NewQuoteHandler(service),
	)

	if opts.proxy {
		p, err := newProxy(upstreamURL)
		if err != nil {
			t.Fatalf("creating proxy: %v", err)
		}

		cfg.Proxy = p
	}

	httpadapter.SetupRouter(engine, cfg)

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return server
}

// noRedirectClient returns redirects to the caller instead of following them.
func noRedirectClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newProxy(target string) (*proxy.Proxy, error) {
	return proxy.New(proxy.Config{
		Prefix: config.DefaultProxyPrefix,
		Target: target,
		Logger: quietLogger(),
	})
}
