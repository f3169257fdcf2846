// Package metrics provides Prometheus metrics for the recommendation URL service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Labels stay bounded: scenario and route are fixed sets, never request data.

var (
	// URLPairsGeneratedTotal counts image/product URL pairs generated, by scenario.
	URLPairsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reco_url_pairs_generated_total",
		Help: "Total number of recommendation URL pairs generated, by scenario.",
	}, []string{"scenario"})

	// ValidationFailuresTotal counts rejected generation requests, by scenario.
	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reco_validation_failures_total",
		Help: "Total number of generation requests rejected with an invalid parameter, by scenario.",
	}, []string{"scenario"})

	// RateLimitedTotal counts requests rejected by the per-IP limiter.
	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reco_http_rate_limited_total",
		Help: "Total number of HTTP requests rejected by the rate limiter.",
	})

	// HTTPRequestDuration observes handler latency by route and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reco_http_request_duration_seconds",
		Help:    "HTTP request latency, by route pattern and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "code"})
)

// RecordGenerated increments the generated pair counter for scenario.
func RecordGenerated(scenario string) {
	URLPairsGeneratedTotal.WithLabelValues(scenario).Inc()
}

// RecordValidationFailure increments the validation failure counter for scenario.
func RecordValidationFailure(scenario string) {
	ValidationFailuresTotal.WithLabelValues(scenario).Inc()
}

func RecordRateLimited() { RateLimitedTotal.Inc() }

// ObserveRequest records one served request. An empty route is reported as "unmatched".
func ObserveRequest(route string, code int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestDuration.WithLabelValues(route, strconv.Itoa(code)).Observe(elapsed.Seconds())
}
