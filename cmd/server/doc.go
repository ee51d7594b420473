// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

/*
Package main is the entry point for the CareerPath server.

CareerPath recommends career fields and specializations from a user's
skills. Three sources score every candidate: an optional external
classifier, a similarity-aware semantic scorer and an exact-overlap rule
scorer. The hybrid ensemble combines them, and each recommendation carries a
skill gap analysis and a plain-language explanation.

# Application Architecture

The server runs under a Suture v4 supervision tree:

	RootSupervisor ("careerpath")
	├── EngineSupervisor ("engine-layer")
	│   └── Cache maintenance (when RECOMMEND_CACHE_ENABLED=true)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog with a slog bridge for the supervisor
 3. Catalog: CATALOG_PATH, then the Badger snapshot store, then the built-in catalog
 4. Predictor: HTTP classifier behind a circuit breaker, or disabled
 5. Engine: recommend.Engine with weights, boosts and cache from RECOMMEND_*
 6. HTTP: chi router with CORS, rate limiting, compression and Prometheus metrics

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP service stops accepting
connections and drains in-flight requests within HTTP_SHUTDOWN_TIMEOUT.

# Example Usage

Built-in catalog, no classifier:

	./careerpath

Custom catalog persisted to Badger, with a classifier:

	export CATALOG_PATH=/etc/careerpath/catalog.yaml
	export CATALOG_STORE_PATH=/var/lib/careerpath/catalog
	export CATALOG_USE_STORE=true
	export PREDICTOR_ENABLED=true
	export PREDICTOR_URL=http://classifier:8500
	./careerpath
*/
package main
