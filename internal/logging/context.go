// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type scopeKey struct{}

// requestScope identifies one API call. RequestID is echoed to the client;
// CorrelationID is a short tag for grepping the lines of a single
// recommendation run.
type requestScope struct {
	RequestID     string
	CorrelationID string
}

// NewRequestID returns a UUID string.
func NewRequestID() string {
	return uuid.NewString()
}

func newCorrelationID() string {
	return uuid.NewString()[:8]
}

// WithRequest returns a context scoped to requestID with a fresh correlation ID.
func WithRequest(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, scopeKey{}, requestScope{
		RequestID:     requestID,
		CorrelationID: newCorrelationID(),
	})
}

func scopeFrom(ctx context.Context) requestScope {
	if ctx == nil {
		return requestScope{}
	}
	s, _ := ctx.Value(scopeKey{}).(requestScope)
	return s
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	return scopeFrom(ctx).RequestID
}

// CorrelationIDFromContext returns the correlation ID, or "" outside a request.
func CorrelationIDFromContext(ctx context.Context) string {
	return scopeFrom(ctx).CorrelationID
}

// Ctx returns the global logger with request_id and correlation_id from ctx.
//
//	logging.Ctx(ctx).Info().Msg("recommendation computed")
func Ctx(ctx context.Context) *zerolog.Logger {
	l := Logger()
	s := scopeFrom(ctx)
	if s.RequestID == "" && s.CorrelationID == "" {
		return &l
	}
	l = l.With().
		Str("request_id", s.RequestID).
		Str("correlation_id", s.CorrelationID).
		Logger()
	return &l
}
