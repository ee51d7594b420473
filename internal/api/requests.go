// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/careerpath/internal/skills"
	"github.com/tomtom215/careerpath/internal/validation"
)

// maxRequestBodySize caps JSON request bodies.
const maxRequestBodySize = 1 << 20 // 1MB

// RecommendationRequest is the body of POST /api/v1/recommendations.
// SkillsText is scanned for catalog skills, which are merged with Skills.
type RecommendationRequest struct {
	Skills                []string `json:"skills" validate:"max=1000,dive,skill"`
	SkillsText            string   `json:"skills_text" validate:"max=20000"`
	CurrentField          string   `json:"current_field" validate:"max=200"`
	CurrentSpecialization string   `json:"current_specialization" validate:"max=200"`
	TopN                  int      `json:"top_n" validate:"gte=0,lte=100"`
	TopSpecializations    int      `json:"top_specializations" validate:"gte=0,lte=100"`
}

// SkillGapRequest is the body of POST /api/v1/skill-gap.
type SkillGapRequest struct {
	Skills         []string `json:"skills" validate:"required,min=1,max=1000,dive,skill"`
	Specialization string   `json:"specialization" validate:"required,notblank,max=200"`
}

// SkillGapResponse is the payload of POST /api/v1/skill-gap.
type SkillGapResponse struct {
	Specialization string     `json:"specialization"`
	Field          string     `json:"field"`
	Gap            skills.Gap `json:"gap"`
}

// FieldSummary is one entry of GET /api/v1/catalog/fields.
type FieldSummary struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Specializations []string `json:"specializations"`
	SkillCount      int      `json:"skill_count"`
}

// decodeAndValidate reads a size-limited JSON body into dst and validates it.
// Returned errors are either a *validation.RequestValidationError or a
// decode error suitable for a 400 response.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		return verr
	}
	return nil
}
