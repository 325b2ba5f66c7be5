package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/middleware"
	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/proxy"
	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/views"
	"github.com/jsamuelsen/favqs-quotes/internal/platform/config"
	"github.com/jsamuelsen/favqs-quotes/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// Route is one entry of the page route table. Exactly one of View and
// Redirect is set.
type Route struct {
	Path     string
	View     string
	Redirect string
}

// Routes is the page route table.
var Routes = []Route{
	{Path: "/", Redirect: "/quotes"},
	{Path: "/quotes", View: handlers.ViewQuotes},
	{Path: "/random", View: handlers.ViewRandom},
}

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler serves the page views and the JSON quote API.
	QuoteHandler *handlers.QuoteHandler

	// Proxy is the development proxy. Nil when disabled.
	Proxy *proxy.Proxy

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing, then server metrics and the X-Trace-ID header
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (API group only)
//
// Route groups:
//   - /-/ (internal): health endpoints
//   - the page route table: /, /quotes, /random
//   - /api/v1/: JSON quote API
//   - the proxy prefix, when a proxy is configured
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "favqs-quotes"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(serviceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.QuoteHandler != nil {
		engine.SetHTMLTemplate(views.MustLoad())
		setupPageRoutes(engine, Routes, cfg.QuoteHandler.Views())

		apiV1 := engine.Group("/api/v1")
		if cfg.Timeout > 0 {
			apiV1.Use(middleware.Timeout(cfg.Timeout))
		}

		cfg.QuoteHandler.RegisterQuoteRoutes(apiV1)
	}

	if cfg.Proxy != nil {
		cfg.Proxy.Register(engine)
	}

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(noRoute)
	engine.NoMethod(noMethod)
}

// setupPageRoutes registers the route table. Entries naming an unknown view
// are skipped with a warning.
func setupPageRoutes(engine *gin.Engine, routes []Route, pages map[string]gin.HandlerFunc) {
	for _, route := range routes {
		if route.Redirect != "" {
			target := route.Redirect
			engine.GET(route.Path, func(c *gin.Context) {
				c.Redirect(http.StatusFound, target)
			})

			continue
		}

		handler, ok := pages[route.View]
		if !ok {
			slog.Warn("route names an unknown view",
				slog.String("path", route.Path),
				slog.String("view", route.View),
			)

			continue
		}

		engine.GET(route.Path, handler)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	quoteHandler *handlers.QuoteHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
