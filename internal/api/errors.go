// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/careerpath/internal/catalog"
	"github.com/tomtom215/careerpath/internal/logging"
	"github.com/tomtom215/careerpath/internal/recommend"
	"github.com/tomtom215/careerpath/internal/validation"
)

// ErrEmptyBody is returned when a JSON request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// writeEngineError maps engine and catalog errors onto API responses.
func writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	rw := NewResponseWriter(w, r)

	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		rw.ValidationError(verr.Error(), verr.Details())
	case errors.Is(err, recommend.ErrEmptySkillInput):
		rw.ValidationError(err.Error(), map[string]interface{}{"field": "skills"})
	case errors.Is(err, recommend.ErrEmptyCatalog):
		rw.ServiceUnavailable("Career catalog is not loaded")
	case errors.Is(err, catalog.ErrSpecializationNotFound),
		errors.Is(err, catalog.ErrFieldNotFound):
		rw.NotFound(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		rw.GatewayTimeout("Request timed out")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("unhandled API error")
		rw.InternalError("Internal server error")
	}
}
