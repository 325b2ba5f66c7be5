package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentChecks bounds how many health checks run at once.
const maxConcurrentChecks = 8

// ErrDuplicateChecker is returned by Register for a name already in use.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker reports whether one dependency can serve requests.
// The quotes API client implements it by fetching the quote of the day with
// the configured token, so a missing or rejected token reads as unhealthy.
type HealthChecker interface {
	// Name identifies the check in readiness output, e.g. "favqs".
	Name() string

	// Check returns nil when the dependency is usable. It must honor ctx.
	Check(ctx context.Context) error
}

// HealthRegistry aggregates the readiness checks registered at startup.
type HealthRegistry interface {
	// Register adds checker. Names must be unique.
	Register(checker HealthChecker) error

	// CheckAll runs every check under ctx and aggregates the outcome.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the state of one check or of the whole service.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the aggregate served by the readiness endpoint.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of one check. Message is the check's error text.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry is the concurrency-safe HealthRegistry used by the service.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	names    []string
	checkers map[string]HealthChecker
}

// NewHealthRegistry creates an empty registry.
func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{
		checkers: make(map[string]HealthChecker),
	}
}

// Register adds checker under checker.Name().
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	if _, ok := r.checkers[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.checkers[name] = checker
	r.names = append(r.names, name)

	return nil
}

// Names returns the registered check names in registration order.
func (r *DefaultHealthRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.names...)
}

// CheckAll runs the registered checks concurrently. Any unhealthy check makes
// the aggregate unhealthy; an empty registry is healthy.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := make([]HealthChecker, 0, len(r.names))
	for _, name := range r.names {
		checkers = append(checkers, r.checkers[name])
	}
	r.mu.RUnlock()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	var mu sync.Mutex

	// Checks never fail the group: each failure is recorded in the result.
	var g errgroup.Group
	g.SetLimit(maxConcurrentChecks)

	for _, checker := range checkers {
		g.Go(func() error {
			checkResult := runCheck(ctx, checker)

			mu.Lock()
			defer mu.Unlock()

			result.Checks[checker.Name()] = checkResult
			if checkResult.Status == HealthStatusUnhealthy {
				result.Status = HealthStatusUnhealthy
			}

			return nil
		})
	}

	_ = g.Wait()

	return result
}

// runCheck runs one check, turning a panic into an unhealthy result.
func runCheck(ctx context.Context, checker HealthChecker) (res *CheckResult) {
	start := time.Now()

	defer func() {
		res.Duration = time.Since(start)
	}()

	defer func() {
		if p := recover(); p != nil {
			res = &CheckResult{
				Status:  HealthStatusUnhealthy,
				Message: fmt.Sprintf("check panicked: %v", p),
			}
		}
	}()

	if err := checker.Check(ctx); err != nil {
		return &CheckResult{Status: HealthStatusUnhealthy, Message: checkMessage(ctx, err)}
	}

	return &CheckResult{Status: HealthStatusHealthy}
}

// checkMessage reports a readiness deadline plainly instead of the transport's
// wrapped error chain.
func checkMessage(ctx context.Context, err error) string {
	if errors.Is(err, context.DeadlineExceeded) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "check did not finish before the readiness deadline"
	}

	return err.Error()
}
