// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/careerpath/internal/logging"
	"github.com/tomtom215/careerpath/internal/recommend"
)

// Recommendations handles POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var body RecommendationRequest
	if err := decodeAndValidate(w, r, &body); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	userSkills := body.Skills
	if body.SkillsText != "" && h.index != nil {
		extracted := h.index.Extract(body.SkillsText)
		logging.Ctx(r.Context()).Debug().
			Int("extracted", len(extracted)).
			Msg("skills extracted from text")
		userSkills = append(append([]string{}, body.Skills...), extracted...)
	}

	req := recommend.Request{
		Skills:                userSkills,
		CurrentField:          body.CurrentField,
		CurrentSpecialization: body.CurrentSpecialization,
		TopFields:             body.TopN,
		TopSpecializations:    body.TopSpecializations,
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	result, err := h.engine.Recommend(ctx, req)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	NewResponseWriter(w, r).Success(result)
}

// SkillGap handles POST /api/v1/skill-gap.
func (h *Handler) SkillGap(w http.ResponseWriter, r *http.Request) {
	var body SkillGapRequest
	if err := decodeAndValidate(w, r, &body); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	spec, gap, err := h.engine.AnalyzeGap(body.Skills, body.Specialization)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	NewResponseWriter(w, r).Success(SkillGapResponse{
		Specialization: spec.Title,
		Field:          spec.FieldName,
		Gap:            gap,
	})
}
