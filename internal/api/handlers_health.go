// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// It returns 200 as long as the process is serving HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// The service is ready once a non-empty catalog is loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	cat := h.engine.Catalog()
	ready := cat != nil && !cat.IsEmpty()

	data := map[string]interface{}{
		"catalog_loaded": ready,
		"ready_to_serve": ready,
		"uptime":         time.Since(h.startTime).Seconds(),
	}
	if ready {
		stats := cat.Stats()
		data["fields"] = stats.Fields
		data["specializations"] = stats.Specializations
	}

	rw := NewResponseWriter(w, r)
	if !ready {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Career catalog is not loaded", data)
		return
	}
	rw.Success(data)
}
