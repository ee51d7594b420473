// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/careerpath/internal/logging"
)

func serveRequestID(t *testing.T, header string) (ctxID, correlationID, responseID string) {
	t.Helper()

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = logging.RequestIDFromContext(r.Context())
		correlationID = logging.CorrelationIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return ctxID, correlationID, rec.Header().Get(RequestIDHeader)
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()

	ctxID, correlationID, responseID := serveRequestID(t, "")

	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("response X-Request-ID %q is not a UUID: %v", responseID, err)
	}
	if ctxID != responseID {
		t.Errorf("context ID %q != response ID %q", ctxID, responseID)
	}
	if correlationID == "" {
		t.Error("expected a correlation ID in context")
	}
}

func TestRequestID_PreservesOrReplaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		preserve bool
	}{
		{"upstream id kept", "upstream-abc-123", true},
		{"uuid kept", "6f1c1d5e-2b6a-4c3e-9d7a-0a1b2c3d4e5f", true},
		{"space replaced", "bad id", false},
		{"newline replaced", "abc\nINFO forged", false},
		{"non-ascii replaced", "idé", false},
		{"too long replaced", strings.Repeat("a", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctxID, _, responseID := serveRequestID(t, tt.header)
			if tt.preserve && responseID != tt.header {
				t.Errorf("response ID = %q, want %q", responseID, tt.header)
			}
			if !tt.preserve && responseID == tt.header {
				t.Errorf("invalid header %q was propagated", tt.header)
			}
			if ctxID != responseID {
				t.Errorf("context ID %q != response ID %q", ctxID, responseID)
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		_, _, id := serveRequestID(t, "")
		if seen[id] {
			t.Fatalf("duplicate request ID %s", id)
		}
		seen[id] = true
	}
}
