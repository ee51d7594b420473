// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

/*
Package api exposes the recommendation engine over HTTP.

Routes are served by a Chi router with go-chi/cors, go-chi/httprate and the
middleware package (request IDs, Prometheus metrics, gzip).

# Endpoints

	POST /api/v1/recommendations      ranked fields, specializations, gap, explanation
	POST /api/v1/skill-gap            gap analysis against one specialization
	GET  /api/v1/catalog/fields       fields with their specialization titles
	GET  /api/v1/skills/suggest       catalog skill autocomplete (?prefix=&limit=)
	GET  /api/v1/health/live          liveness probe
	GET  /api/v1/health/ready         readiness probe (catalog loaded)
	GET  /metrics                     Prometheus exposition

A recommendation request carries a skill list, free text, or both:

	{
	  "skills": ["Python", "SQL"],
	  "skills_text": "five years of excel reporting and statistics",
	  "current_field": "Technology",
	  "top_n": 3
	}

Skills named in skills_text are found with the catalog's Aho-Corasick index
and merged with skills before ranking.

# Response Format

Every endpoint except /metrics answers with APIResponse:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "VALIDATION_FAILED", "message": "..."}, "meta": {...}}

# Error Mapping

  - empty skill input, malformed body, validation failure: 400
  - unknown specialization: 404
  - rate limit exceeded: 429
  - catalog not loaded: 503
  - request deadline exceeded: 504

Predictor failures never reach the client; the engine degrades to the
semantic and rule sources and reports predictor_available=false.
*/
package api
