package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Completion outcomes recorded by CompletionsTotal.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeEmpty   = "empty"
)

// NoMarker labels splits where no notes heading was found.
const NoMarker = "none"

// Metrics encapsulates Prometheus metrics for the server.
// All recording helpers are safe to call on a nil *Metrics.
type Metrics struct {
	registry        *prometheus.Registry
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ActiveRequests  prometheus.Gauge
	ErrorsTotal     *prometheus.CounterVec

	CompletionsTotal   *prometheus.CounterVec
	CompletionDuration prometheus.Histogram
	PromptTokens       prometheus.Histogram
	SplitsTotal        *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with a custom registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travelplanner_http_requests_total",
				Help: "Total number of HTTP requests by route and status",
			},
			[]string{"endpoint", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "travelplanner_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		ActiveRequests: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "travelplanner_http_active_requests",
				Help: "Number of currently active HTTP requests",
			},
		),
		ErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travelplanner_errors_total",
				Help: "Total number of error responses by class",
			},
			[]string{"type"},
		),
		CompletionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travelplanner_completions_total",
				Help: "Total number of completion calls by outcome",
			},
			[]string{"outcome"},
		),
		CompletionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "travelplanner_completion_duration_seconds",
				Help:    "Duration of completion calls in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
			},
		),
		PromptTokens: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "travelplanner_prompt_tokens",
				Help:    "Number of tokens in prompts sent to the completion service",
				Buckets: prometheus.LinearBuckets(100, 100, 10),
			},
		),
		SplitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travelplanner_itinerary_splits_total",
				Help: "Total number of completion splits by matched notes marker",
			},
			[]string{"marker"},
		),
	}

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

// ObserveCompletion records one completion call.
func (m *Metrics) ObserveCompletion(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.CompletionsTotal.WithLabelValues(outcome).Inc()
	m.CompletionDuration.Observe(d.Seconds())
}

// ObservePromptTokens records the size of a prompt.
func (m *Metrics) ObservePromptTokens(n int) {
	if m == nil {
		return
	}
	m.PromptTokens.Observe(float64(n))
}

// ObserveSplit records which marker split a completion.
func (m *Metrics) ObserveSplit(marker string) {
	if m == nil {
		return
	}
	if marker == "" {
		marker = NoMarker
	}
	m.SplitsTotal.WithLabelValues(marker).Inc()
}

// Handler returns a handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: false,
	})
}
