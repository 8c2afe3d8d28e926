// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// TurnsTotal tracks engagement turns by outcome.
	TurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagement_turns_total",
			Help: "Total engagement turns processed",
		},
		[]string{"outcome"},
	)

	// TurnDuration tracks full turn pipeline duration.
	TurnDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engagement_turn_duration_seconds",
			Help:    "End-to-end turn pipeline duration",
			Buckets: []float64{.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
	)

	// LLMCallDuration tracks completion call duration per purpose.
	LLMCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_call_duration_seconds",
			Help:    "LLM completion call duration",
			Buckets: []float64{.25, .5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"purpose", "status"},
	)

	// LLMTokensTotal tracks total LLM tokens processed.
	LLMTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_tokens_total",
			Help: "Total LLM tokens processed",
		},
		[]string{"purpose", "direction"},
	)

	// ParseFailuresTotal tracks degraded sub-steps whose structured
	// payload could not be parsed.
	ParseFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagement_parse_failures_total",
			Help: "Structured completion payloads that failed to parse",
		},
		[]string{"step"},
	)

	// ProposalsSpawned tracks auto-spawned draft proposals.
	ProposalsSpawned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proposals_spawned_total",
			Help: "Draft proposals auto-spawned by the engine",
		},
	)

	// LeadScoreUpdates tracks lead score/status writes after scoring.
	LeadScoreUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_score_updates_total",
			Help: "Lead records rewritten because scoring changed them",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordLLMCall records metrics for one completion call.
func RecordLLMCall(purpose, status string, duration float64, tokensIn, tokensOut int) {
	LLMCallDuration.WithLabelValues(purpose, status).Observe(duration)
	LLMTokensTotal.WithLabelValues(purpose, "in").Add(float64(tokensIn))
	LLMTokensTotal.WithLabelValues(purpose, "out").Add(float64(tokensOut))
}
