// Package proxy forwards a local path prefix to the quotes API during
// development so browser code can call it same-origin.
//
// A request for <Prefix>/quotes?page=2 is sent to <Target>/quotes?page=2 with
// the Host header rewritten to the target host.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/middleware"
)

// Configuration errors.
var (
	ErrPrefixRequired = errors.New("proxy prefix is required")
	ErrInvalidPrefix  = errors.New("proxy prefix must start with /")
	ErrInvalidTarget  = errors.New("proxy target must be an absolute http(s) URL")
)

// Config configures the proxy.
type Config struct {
	// Prefix is the local path prefix, e.g. "/favqs". It is stripped before forwarding.
	Prefix string

	// Target is the upstream base URL, e.g. "https://favqs.com/api".
	Target string

	// Transport is the round tripper used upstream. Defaults to http.DefaultTransport.
	Transport http.RoundTripper

	// Logger receives upstream failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// Proxy is an http.Handler forwarding Prefix to Target.
type Proxy struct {
	prefix  string
	target  *url.URL
	reverse *httputil.ReverseProxy
	logger  *slog.Logger
}

// New validates cfg and builds the proxy.
func New(cfg Config) (*Proxy, error) {
	prefix := strings.TrimSuffix(cfg.Prefix, "/")
	if prefix == "" {
		return nil, ErrPrefixRequired
	}

	if !strings.HasPrefix(prefix, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, cfg.Prefix)
	}

	target, err := url.Parse(cfg.Target)
	if err != nil || target.Host == "" || (target.Scheme != "http" && target.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, cfg.Target)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	p := &Proxy{
		prefix: prefix,
		target: target,
		logger: logger.With(slog.String("component", "proxy"), slog.String("target", target.String())),
	}

	p.reverse = &httputil.ReverseProxy{
		Rewrite:      p.rewrite,
		Transport:    otelhttp.NewTransport(transport),
		ErrorHandler: p.handleError,
	}

	return p, nil
}

// Prefix returns the normalized local prefix.
func (p *Proxy) Prefix() string {
	return p.prefix
}

// ServeHTTP implements http.Handler.
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.reverse.ServeHTTP(w, r)
}

// Register mounts the proxy on engine for every method under the prefix.
func (p *Proxy) Register(engine *gin.Engine) {
	handler := gin.WrapH(p)

	engine.Any(p.prefix, handler)
	engine.Any(p.prefix+"/*path", handler)
}

// rewrite strips the prefix, joins the remainder onto the target path and
// sets the outbound Host to the target host.
func (p *Proxy) rewrite(pr *httputil.ProxyRequest) {
	in := pr.In.URL

	rest := strings.TrimPrefix(in.Path, p.prefix)
	rawRest := strings.TrimPrefix(in.EscapedPath(), p.prefix)

	pr.Out.URL.Path = rest
	pr.Out.URL.RawPath = ""

	if rawRest != rest {
		pr.Out.URL.RawPath = rawRest
	}

	pr.SetURL(p.target)
	pr.SetXForwarded()
}

// handleError answers with the error envelope: 504 TIMEOUT when the target
// did not answer in time, 502 UPSTREAM_ERROR otherwise.
func (p *Proxy) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusBadGateway, dto.ErrorCodeUpstream

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		status, code = http.StatusGatewayTimeout, dto.ErrorCodeTimeout
	}

	p.logger.ErrorContext(r.Context(), "proxy request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	)

	resp := dto.NewErrorResponse(code, "dev proxy could not reach "+p.target.Host).
		WithTraceID(traceID(r))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// traceID prefers the span trace ID so proxy failures can be found in traces.
func traceID(r *http.Request) string {
	if id := dto.TraceIDFromRequest(r); id != "" {
		return id
	}

	return middleware.RequestIDFromContext(r.Context())
}
