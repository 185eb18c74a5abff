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

	// LLMStreamDuration tracks LLM streaming response duration.
	LLMStreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_stream_duration_seconds",
			Help:    "LLM streaming response duration",
			Buckets: []float64{1, 2, 5, 10, 20, 30, 45, 60, 90, 120},
		},
		[]string{"model", "status"},
	)

	// LLMTokensTotal tracks total LLM tokens processed.
	LLMTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_tokens_total",
			Help: "Total LLM tokens processed",
		},
		[]string{"model", "direction"},
	)

	// SSEConnectionsActive tracks active SSE connections.
	SSEConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sse_connections_active",
			Help: "Number of active SSE connections",
		},
	)

	// DecksGeneratedTotal tracks decks persisted from chat extraction.
	DecksGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decks_generated_total",
			Help: "Total decks created from extracted chat payloads",
		},
		[]string{"tenant_id", "industry"},
	)

	// DeckExtractionsTotal tracks extraction attempts by outcome. Outcome is
	// one of: success, incomplete, parse_error, invalid.
	DeckExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deck_extractions_total",
			Help: "Deck payload extraction attempts by outcome",
		},
		[]string{"outcome"},
	)

	// SlideVersionsSavedTotal tracks slide version snapshots saved.
	SlideVersionsSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slide_versions_saved_total",
			Help: "Total slide version snapshots saved",
		},
	)

	// ExportsTotal tracks document exports by format and status.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deck_exports_total",
			Help: "Total deck exports by format and status",
		},
		[]string{"format", "status"},
	)

	// MessagesTotal tracks total chat messages published.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total chat messages published",
		},
		[]string{"tenant_id", "role"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordLLMStream records metrics for an LLM streaming response.
func RecordLLMStream(model, status string, duration float64, tokensIn, tokensOut int) {
	LLMStreamDuration.WithLabelValues(model, status).Observe(duration)
	LLMTokensTotal.WithLabelValues(model, "in").Add(float64(tokensIn))
	LLMTokensTotal.WithLabelValues(model, "out").Add(float64(tokensOut))
}

// RecordExtraction records one extraction attempt outcome.
func RecordExtraction(outcome string) {
	DeckExtractionsTotal.WithLabelValues(outcome).Inc()
}

// IncrementSSEConnections increments the active SSE connection count.
func IncrementSSEConnections() {
	SSEConnectionsActive.Inc()
}

// DecrementSSEConnections decrements the active SSE connection count.
func DecrementSSEConnections() {
	SSEConnectionsActive.Dec()
}
