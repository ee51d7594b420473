// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

// Package validation provides struct validation using go-playground/validator v10.
//
// One shared validator is built on first use with the custom tags below.
// Fields are reported by their JSON path (for example "skills[3]") so a
// client can find the offending value in the body it sent.
//
// # Custom Tags
//
//   - notblank: string must contain a non-whitespace character
//   - skill: a skill label; non-blank, at most MaxSkillLength runes, no
//     control characters (use with dive on skill lists)
//
// # Usage
//
//	type RecommendationRequest struct {
//	    Skills []string `json:"skills" validate:"max=200,dive,skill"`
//	    TopN   int      `json:"top_n" validate:"gte=0,lte=20"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    rw.ValidationError(verr.Error(), verr.Details())
//	    return
//	}
package validation
