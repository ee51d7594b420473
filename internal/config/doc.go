// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

/*
Package config provides centralized configuration management for CareerPath.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (config.yaml, or the path in CONFIG_PATH), then environment
variables. Only environment variables listed in the mapping table are read;
anything else in the environment is ignored.

# Sections

  - server: listen address, timeouts, environment, CORS origins, rate limit
  - logging: level, format, caller
  - catalog: catalog file path and Badger snapshot store
  - predictor: optional classifier service, rate limit and circuit breaker
  - recommend: ensemble weights, boosts, similarity constants, limits, cache

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_TIMEOUT (default: 30s), HTTP_SHUTDOWN_TIMEOUT (default: 10s)
  - ENVIRONMENT: development, staging, production
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Catalog:
  - CATALOG_PATH: YAML or JSON catalog document
  - CATALOG_STORE_PATH, CATALOG_USE_STORE: Badger snapshot store

Predictor:
  - PREDICTOR_ENABLED, PREDICTOR_URL, PREDICTOR_TIMEOUT
  - PREDICTOR_RPS, PREDICTOR_BURST
  - PREDICTOR_BREAKER_MAX_REQUESTS, PREDICTOR_BREAKER_INTERVAL,
    PREDICTOR_BREAKER_TIMEOUT, PREDICTOR_BREAKER_MIN_REQUESTS,
    PREDICTOR_BREAKER_FAILURE_RATIO

Recommendation engine:
  - RECOMMEND_WEIGHT_MODEL, RECOMMEND_WEIGHT_SEMANTIC, RECOMMEND_WEIGHT_RULE
  - RECOMMEND_FIELD_BOOST, RECOMMEND_SPECIALIZATION_BOOST, RECOMMEND_TARGET_BOOST
  - RECOMMEND_RELATED_THRESHOLD, RECOMMEND_PARTIAL_CREDIT
  - RECOMMEND_DEFAULT_TOP_FIELDS, RECOMMEND_DEFAULT_TOP_SPECIALIZATIONS,
    RECOMMEND_MAX_TOP, RECOMMEND_MAX_SKILLS, RECOMMEND_PREDICTION_TIMEOUT
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_MAX_ENTRIES

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Validation

Load returns an error when a value is out of range: ports, log levels,
rate limit bounds, a predictor enabled without a valid URL, or engine
constants outside their domain. Wildcard CORS is rejected in production.

# Thread Safety

Config is immutable after Load and safe for concurrent reads.
*/
package config
