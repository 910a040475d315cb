package routing

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/teilomillet/travelplanner/server/metrics"
)

func TestRegisterMetricsRoutes(t *testing.T) {
	// Create new metrics instance for testing
	m := metrics.NewMetrics()

	r := chi.NewRouter()
	RegisterMetricsRoutes(r, m)

	server := httptest.NewServer(r)
	defer server.Close()

	// Increment some metrics so they are exported
	m.RequestsTotal.WithLabelValues("/ask", "200").Inc()
	m.ErrorsTotal.WithLabelValues("server_error").Inc()
	m.ObserveCompletion(metrics.OutcomeSuccess, 0)
	m.ObserveSplit("Notes")

	resp, err := http.Get(server.URL + "/metrics")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	bodyStr := string(body)
	expectedMetrics := []string{
		"travelplanner_http_requests_total",
		"travelplanner_errors_total",
		"travelplanner_completions_total",
		"travelplanner_itinerary_splits_total",
		"go_goroutines",
	}

	for _, metric := range expectedMetrics {
		assert.Contains(t, bodyStr, metric, "response should contain metric '%s'", metric)
	}
}
