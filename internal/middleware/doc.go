// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

/*
Package middleware provides chi-compatible HTTP middleware for the API.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and stores it, with a new
    correlation ID, in the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - Compression: chi's Compress middleware limited to JSON and plain text

Middleware Stack:

The router installs them in this order:

	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression())

CORS, rate limiting and security headers live in internal/api because they
depend on server configuration.
*/
package middleware
