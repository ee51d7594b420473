// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package initialization and exposed by the HTTP server at /metrics.

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limited requests (counter)
    Labels: endpoint

Recommendation Metrics:
  - careerpath_recommendations_total: Requests by outcome (counter)
    Labels: outcome (ok, invalid_input, empty_catalog)
  - careerpath_recommendation_duration_seconds: End-to-end latency (histogram)
  - careerpath_source_results_total: Source availability (counter)
    Labels: source (model, semantic, rule), stage (field, specialization),
    result (produced, empty)

Predictor Metrics:
  - careerpath_predictor_requests_total: Predictor calls (counter)
    Labels: operation (field, specialization), outcome (ok, error, timeout)
  - careerpath_predictor_duration_seconds: Predictor latency (histogram)
    Labels: operation

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests through the breaker (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures: Consecutive failures (gauge)
  - circuit_breaker_state_transitions_total: State transitions (counter)
    Labels: name, from_state, to_state

Cache and Catalog Metrics:
  - careerpath_result_cache_hits_total / careerpath_result_cache_misses_total
  - careerpath_result_cache_entries: Cached results (gauge)
  - careerpath_catalog_entries: Loaded catalog size (gauge)
    Labels: kind (fields, specializations, skills)

# Usage

	metrics.RecordRecommendation(metrics.OutcomeOK, time.Since(start))
	metrics.RecordPredictorCall("field", metrics.OutcomeTimeout, elapsed)

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
