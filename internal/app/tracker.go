package app

import (
	"context"
	"errors"
	"sync"
)

// DefaultErrorMessage is recorded when a failure carries no message of its own.
const DefaultErrorMessage = "Request failed"

// errAborted stands in for the error of an operation that panicked.
var errAborted = errors.New("operation aborted")

// Status summarizes what a Tracker last observed.
type Status int

const (
	// StatusIdle means no operation has been started.
	StatusIdle Status = iota
	// StatusRunning means the newest operation has not finished.
	StatusRunning
	// StatusSucceeded means the newest operation returned a result.
	StatusSucceeded
	// StatusFailed means the newest operation failed; see TrackerState.Error.
	StatusFailed
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TrackerState is a snapshot of a Tracker.
type TrackerState struct {
	Loading bool
	Error   string
	Status  Status
}

// Tracker holds the loading flag and last error message of one UI context.
//
// Every Run bumps a generation counter. Only the run holding the newest
// generation may write the final state, so an older run that finishes late
// can neither clear Loading early nor overwrite a newer error.
type Tracker struct {
	mu         sync.Mutex
	loading    bool
	errMsg     string
	status     Status
	generation uint64
}

// NewTracker returns an idle tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// State returns a snapshot of the tracker.
func (t *Tracker) State() TrackerState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return TrackerState{
		Loading: t.loading,
		Error:   t.errMsg,
		Status:  t.status,
	}
}

// Loading reports whether the newest run is still in flight.
func (t *Tracker) Loading() bool {
	return t.State().Loading
}

// Err returns the last recorded error message, or "" after a success.
func (t *Tracker) Err() string {
	return t.State().Error
}

func (t *Tracker) begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++
	t.loading = true
	t.errMsg = ""
	t.status = StatusRunning

	return t.generation
}

// finish records the outcome of the run with generation gen.
// It reports false, changing nothing, when a newer run has started since.
func (t *Tracker) finish(gen uint64, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		return false
	}

	t.loading = false
	if err != nil {
		t.errMsg = ErrorMessage(err)
		t.status = StatusFailed
	} else {
		t.status = StatusSucceeded
	}

	return true
}

// Run executes op under t. Loading is set and the error cleared before op
// starts. On success the result is returned with true. On failure the error
// message is recorded and the zero value is returned with false; the error
// itself is not returned. Loading is cleared when op ends, even by panic.
func Run[T any](ctx context.Context, t *Tracker, op func(context.Context) (T, error)) (result T, ok bool) {
	gen := t.begin()

	err := errAborted
	defer func() { t.finish(gen, err) }()

	result, err = op(ctx)
	if err != nil {
		var zero T
		return zero, false
	}

	return result, true
}

// ErrorMessage returns the message shown for err: its text, or
// DefaultErrorMessage when err is nil or has an empty message.
func ErrorMessage(err error) string {
	if err == nil {
		return DefaultErrorMessage
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return DefaultErrorMessage
}
