package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyError is an error whose message is empty.
type emptyError struct{}

func (emptyError) Error() string { return "" }

func TestNewTracker_Idle(t *testing.T) {
	tr := NewTracker()

	assert.Equal(t, TrackerState{Loading: false, Error: "", Status: StatusIdle}, tr.State())
	assert.False(t, tr.Loading())
	assert.Empty(t, tr.Err())
}

func TestRun_Success(t *testing.T) {
	tr := NewTracker()

	var loadingDuringOp bool
	result, ok := Run(context.Background(), tr, func(ctx context.Context) (string, error) {
		loadingDuringOp = tr.Loading()
		return "X", nil
	})

	assert.True(t, ok)
	assert.Equal(t, "X", result)
	assert.True(t, loadingDuringOp)
	assert.Equal(t, TrackerState{Loading: false, Error: "", Status: StatusSucceeded}, tr.State())
}

func TestRun_Failure(t *testing.T) {
	tr := NewTracker()

	result, ok := Run(context.Background(), tr, func(ctx context.Context) (map[string]any, error) {
		return map[string]any{"ignored": true}, errors.New("HTTP 500: boom")
	})

	assert.False(t, ok)
	assert.Nil(t, result)
	assert.Equal(t, TrackerState{Loading: false, Error: "HTTP 500: boom", Status: StatusFailed}, tr.State())
}

func TestRun_FailureWithoutMessage(t *testing.T) {
	tr := NewTracker()

	_, ok := Run(context.Background(), tr, func(ctx context.Context) (int, error) {
		return 0, emptyError{}
	})

	assert.False(t, ok)
	assert.Equal(t, DefaultErrorMessage, tr.Err())
	assert.Equal(t, "Request failed", tr.Err())
}

func TestRun_ClearsPreviousError(t *testing.T) {
	tr := NewTracker()

	_, _ = Run(context.Background(), tr, func(ctx context.Context) (int, error) {
		return 0, errors.New("first failure")
	})
	require.Equal(t, "first failure", tr.Err())

	var errDuringOp string
	_, ok := Run(context.Background(), tr, func(ctx context.Context) (int, error) {
		errDuringOp = tr.Err()
		return 1, nil
	})

	assert.True(t, ok)
	assert.Empty(t, errDuringOp)
	assert.Empty(t, tr.Err())
}

func TestRun_PanicClearsLoading(t *testing.T) {
	tr := NewTracker()

	assert.Panics(t, func() {
		_, _ = Run(context.Background(), tr, func(ctx context.Context) (int, error) {
			panic("boom")
		})
	})

	state := tr.State()
	assert.False(t, state.Loading)
	assert.Equal(t, StatusFailed, state.Status)
	assert.Equal(t, "operation aborted", state.Error)
}

func TestRun_StaleRunDoesNotOverwriteNewer(t *testing.T) {
	tr := NewTracker()

	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	slowDone := make(chan struct{})

	go func() {
		defer close(slowDone)
		_, _ = Run(context.Background(), tr, func(ctx context.Context) (int, error) {
			close(slowStarted)
			<-releaseSlow
			return 0, errors.New("stale failure")
		})
	}()

	<-slowStarted

	// A newer run starts and finishes while the older one is in flight.
	result, ok := Run(context.Background(), tr, func(ctx context.Context) (string, error) {
		return "fresh", nil
	})
	require.True(t, ok)
	require.Equal(t, "fresh", result)

	close(releaseSlow)
	<-slowDone

	assert.Equal(t, TrackerState{Loading: false, Error: "", Status: StatusSucceeded}, tr.State())
}

func TestRun_LoadingHeldUntilNewestFinishes(t *testing.T) {
	tr := NewTracker()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	firstDone := make(chan struct{})
	secondStarted := make(chan struct{})
	releaseSecond := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer close(firstDone)
		_, _ = Run(context.Background(), tr, func(ctx context.Context) (int, error) {
			close(firstStarted)
			<-releaseFirst
			return 1, nil
		})
	}()

	<-firstStarted

	go func() {
		defer wg.Done()
		_, _ = Run(context.Background(), tr, func(ctx context.Context) (int, error) {
			close(secondStarted)
			<-releaseSecond
			return 2, errors.New("second failed")
		})
	}()

	<-secondStarted

	// The older run finishing must not clear loading.
	close(releaseFirst)
	<-firstDone
	assert.Equal(t, TrackerState{Loading: true, Error: "", Status: StatusRunning}, tr.State())

	close(releaseSecond)
	wg.Wait()

	assert.Equal(t, TrackerState{Loading: false, Error: "second failed", Status: StatusFailed}, tr.State())
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: "Request failed"},
		{name: "empty message", err: emptyError{}, want: "Request failed"},
		{name: "message", err: errors.New("FAVQS_TOKEN is not set"), want: "FAVQS_TOKEN is not set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "succeeded", StatusSucceeded.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
