// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for recommendation and predictor metrics.
const (
	OutcomeOK           = "ok"
	OutcomeError        = "error"
	OutcomeTimeout      = "timeout"
	OutcomeInvalid      = "invalid_input"
	OutcomeEmptyCatalog = "empty_catalog"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerpath_recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // ok, invalid_input, empty_catalog
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "careerpath_recommendation_duration_seconds",
			Help:    "End-to-end duration of a recommendation in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	// SourceResults counts whether each scoring source produced a non-empty
	// ranking for a stage.
	SourceResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerpath_source_results_total",
			Help: "Scoring source results by stage and availability",
		},
		[]string{"source", "stage", "result"}, // result: produced, empty
	)

	// Predictor Metrics
	PredictorRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerpath_predictor_requests_total",
			Help: "Total number of predictor calls by operation and outcome",
		},
		[]string{"operation", "outcome"}, // outcome: ok, error, timeout
	)

	PredictorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "careerpath_predictor_duration_seconds",
			Help:    "Duration of predictor calls in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Result Cache Metrics
	ResultCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "careerpath_result_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	ResultCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "careerpath_result_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	ResultCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "careerpath_result_cache_entries",
			Help: "Current number of cached recommendation results",
		},
	)

	// Catalog Metrics
	CatalogEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "careerpath_catalog_entries",
			Help: "Number of catalog entries by kind",
		},
		[]string{"kind"}, // fields, specializations, skills
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rejected request for endpoint.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one completed recommendation call.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		RecommendationDuration.Observe(duration.Seconds())
	}
}

// RecordSourceResult records whether a scoring source produced any
// candidates for a stage ("field" or "specialization").
func RecordSourceResult(source, stage string, produced bool) {
	result := "empty"
	if produced {
		result = "produced"
	}
	SourceResults.WithLabelValues(source, stage, result).Inc()
}

// RecordPredictorCall records a predictor call outcome and latency.
func RecordPredictorCall(operation, outcome string, duration time.Duration) {
	PredictorRequests.WithLabelValues(operation, outcome).Inc()
	PredictorDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCacheLookup records a result cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		ResultCacheHits.Inc()
	} else {
		ResultCacheMisses.Inc()
	}
}

// UpdateCacheSize sets the current result cache entry count.
func UpdateCacheSize(entries int) {
	ResultCacheSize.Set(float64(entries))
}

// SetCatalogStats publishes the loaded catalog dimensions.
func SetCatalogStats(fields, specializations, skills int) {
	CatalogEntries.WithLabelValues("fields").Set(float64(fields))
	CatalogEntries.WithLabelValues("specializations").Set(float64(specializations))
	CatalogEntries.WithLabelValues("skills").Set(float64(skills))
}
