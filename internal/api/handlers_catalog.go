// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/careerpath/internal/cache"
)

// Suggestion limits for GET /api/v1/skills/suggest
const (
	defaultSuggestLimit = 10
	maxSuggestLimit     = 50
)

// CatalogFields handles GET /api/v1/catalog/fields.
func (h *Handler) CatalogFields(w http.ResponseWriter, r *http.Request) {
	cat := h.engine.Catalog()
	if cat == nil || cat.IsEmpty() {
		NewResponseWriter(w, r).ServiceUnavailable("Career catalog is not loaded")
		return
	}

	fields := cat.Fields()
	out := make([]FieldSummary, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldSummary{
			Name:            f.Name,
			Description:     f.Description,
			Specializations: f.Specializations,
			SkillCount:      len(f.KnownSkills),
		})
	}

	NewResponseWriter(w, r).SuccessList(out, len(out))
}

// SuggestSkills handles GET /api/v1/skills/suggest?prefix=&limit=.
func (h *Handler) SuggestSkills(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	prefix := strings.TrimSpace(r.URL.Query().Get("prefix"))
	if prefix == "" {
		rw.ValidationError("prefix is required", map[string]interface{}{"field": "prefix"})
		return
	}

	limit := defaultSuggestLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxSuggestLimit {
			rw.ValidationError("limit must be between 1 and "+strconv.Itoa(maxSuggestLimit),
				map[string]interface{}{"field": "limit", "value": raw})
			return
		}
		limit = parsed
	}

	suggestions := []cache.Suggestion{}
	if h.index != nil {
		if found := h.index.Suggest(prefix, limit); found != nil {
			suggestions = found
		}
	}

	rw.SuccessList(suggestions, len(suggestions))
}
