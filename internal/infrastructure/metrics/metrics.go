// Package metrics provides Prometheus metrics for the Joyce token server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TokensIssued tracks the total number of participant tokens minted.
	TokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "joyce_tokens_issued_total",
			Help: "Total number of participant tokens minted",
		},
	)

	// TokenErrors tracks failed token mint attempts.
	TokenErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "joyce_token_errors_total",
			Help: "Total number of failed token mint attempts",
		},
	)

	// ActiveSessions tracks the number of tracked sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "joyce_active_sessions",
			Help: "Number of currently tracked sessions",
		},
	)

	// SessionStateTransitions tracks session state changes.
	SessionStateTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "joyce_session_state_transitions_total",
			Help: "Total number of session state transitions",
		},
		[]string{"from_state", "to_state"},
	)

	// LiveKitSyncDuration tracks the duration of LiveKit sync operations.
	LiveKitSyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "joyce_livekit_sync_duration_seconds",
			Help:    "Duration of LiveKit room sync operations",
			Buckets: prometheus.DefBuckets,
		},
	)

	// LiveKitSyncErrors tracks errors during LiveKit sync.
	LiveKitSyncErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "joyce_livekit_sync_errors_total",
			Help: "Total number of errors during LiveKit sync",
		},
	)

	// TokenGenerationDuration tracks token generation time.
	TokenGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "joyce_token_generation_duration_seconds",
			Help:    "Duration of LiveKit token generation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)
)

// RecordTokenIssued increments token issuance metrics.
func RecordTokenIssued() {
	TokensIssued.Inc()
	ActiveSessions.Inc()
}

// RecordSessionEvicted decrements the active session gauge.
func RecordSessionEvicted() {
	ActiveSessions.Dec()
}

// RecordStateTransition records a session state change.
func RecordStateTransition(fromState, toState string) {
	SessionStateTransitions.WithLabelValues(fromState, toState).Inc()
}
