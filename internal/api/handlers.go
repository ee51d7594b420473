// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/careerpath/internal/catalog"
	"github.com/tomtom215/careerpath/internal/recommend"
	"github.com/tomtom215/careerpath/internal/validation"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_recommend.go: recommendation and skill-gap endpoints
//   - handlers_catalog.go: catalog listing and skill autocomplete
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	engine         *recommend.Engine
	index          *catalog.SkillIndex
	requestTimeout time.Duration
	startTime      time.Time
}

// NewHandler creates a handler around engine. The skill index is built from
// the engine's catalog once, since the catalog never changes.
func NewHandler(engine *recommend.Engine, requestTimeout time.Duration) *Handler {
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}
	var index *catalog.SkillIndex
	if cat := engine.Catalog(); cat != nil {
		index = catalog.NewSkillIndex(cat)
	}
	return &Handler{
		engine:         engine,
		index:          index,
		requestTimeout: requestTimeout,
		startTime:      time.Now(),
	}
}

// writeDecodeError answers a failed decodeAndValidate.
func writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		writeEngineError(w, r, err)
		return
	}
	NewResponseWriter(w, r).BadRequest(err.Error())
}
