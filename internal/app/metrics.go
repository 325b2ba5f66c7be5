package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tracker outcome label values.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// TrackerMetrics counts tracked operations by outcome.
type TrackerMetrics struct {
	runs *prometheus.CounterVec
}

// NewTrackerMetrics registers the tracker counters with reg.
// The same registry must back the /-/metrics gatherer for them to be served.
func NewTrackerMetrics(reg prometheus.Registerer) *TrackerMetrics {
	return &TrackerMetrics{
		runs: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "quotes",
			Name:      "tracker_runs_total",
			Help:      "Tracked quote operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}
}

func (m *TrackerMetrics) observe(operation string, ok bool) {
	if m == nil {
		return
	}

	outcome := outcomeSuccess
	if !ok {
		outcome = outcomeFailure
	}

	m.runs.WithLabelValues(operation, outcome).Inc()
}
