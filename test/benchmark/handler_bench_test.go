package benchmark

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/jsamuelsen/favqs-quotes/internal/adapters/http"
	"github.com/jsamuelsen/favqs-quotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/favqs-quotes/internal/app"
	"github.com/jsamuelsen/favqs-quotes/internal/domain"
	"github.com/jsamuelsen/favqs-quotes/internal/platform/config"
	"github.com/jsamuelsen/favqs-quotes/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// stubSource is an in-memory quote source.
type stubSource struct {
	page domain.QuotePage
	qotd domain.QuoteOfTheDay
	err  error
}

func (s *stubSource) FetchQuotesPage(context.Context, int) (domain.QuotePage, error) {
	return s.page, s.err
}

func (s *stubSource) FetchQotd(context.Context) (domain.QuoteOfTheDay, error) {
	return s.qotd, s.err
}

func (s *stubSource) Name() string {
	return "favqs"
}

func (s *stubSource) Check(context.Context) error {
	return s.err
}

func newStubSource() *stubSource {
	quotes := make([]any, 0, 25)
	for range 25 {
		quotes = append(quotes, map[string]any{"body": "Less is more.", "author": "Mies van der Rohe"})
	}

	return &stubSource{
		page: domain.QuotePage{"page": 1, "last_page": false, "quotes": quotes},
		qotd: domain.QuoteOfTheDay{"quote": map[string]any{"body": "Carpe diem.", "author": "Horace"}},
	}
}

func newService(source ports.QuoteSource) *app.QuoteService {
	return app.NewQuoteService(app.QuoteServiceConfig{
		Source: source,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// newRouter builds the full router over a stub source.
func newRouter(source *stubSource) *gin.Engine {
	registry := ports.NewHealthRegistry()
	_ = registry.Register(source)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := gin.New()

	httpadapter.SetupRouter(engine, httpadapter.NewDefaultRouterConfig(
		logger,
		&config.AppConfig{Name: "favqs-quotes", Version: "bench", Environment: "test"},
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")),
		handlers.NewQuoteHandler(newService(source)),
	))

	return engine
}

// BenchmarkLivenessHandler measures the performance of the liveness endpoint.
// This is a critical path for Kubernetes probes and should be extremely fast.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{})
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		handler.Liveness(createGinContext(w, req))
	}
}

// BenchmarkReadinessHandler measures readiness with the quotes API check registered.
func BenchmarkReadinessHandler(b *testing.B) {
	registry := ports.NewHealthRegistry()
	_ = registry.Register(newStubSource())

	handler := handlers.NewHealthHandler(registry, handlers.BuildInfo{})
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		handler.Readiness(createGinContext(w, req))
	}
}

// BenchmarkTrackerRun measures the tracker bookkeeping around a trivial operation.
func BenchmarkTrackerRun(b *testing.B) {
	tracker := app.NewTracker()
	ctx := context.Background()
	op := func(context.Context) (int, error) { return 1, nil }

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = app.Run(ctx, tracker, op)
	}
}

// BenchmarkTrackerRun_Failure measures the failure path, which formats the message.
func BenchmarkTrackerRun_Failure(b *testing.B) {
	tracker := app.NewTracker()
	ctx := context.Background()
	failure := domain.NewRequestError(http.StatusBadGateway, "", "Bad Gateway")
	op := func(context.Context) (int, error) { return 0, failure }

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = app.Run(ctx, tracker, op)
	}
}

// BenchmarkQuotesView measures rendering one page of quotes through the full router.
func BenchmarkQuotesView(b *testing.B) {
	router := newRouter(newStubSource())
	req := httptest.NewRequest(http.MethodGet, "/quotes?page=1", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkRandomView_Error measures rendering the error state.
func BenchmarkRandomView_Error(b *testing.B) {
	source := newStubSource()
	source.err = errors.New("connection refused")

	router := newRouter(source)
	req := httptest.NewRequest(http.MethodGet, "/random", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkQuotesAPI measures the JSON pass-through endpoint.
func BenchmarkQuotesAPI(b *testing.B) {
	router := newRouter(newStubSource())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes?page=2", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}
