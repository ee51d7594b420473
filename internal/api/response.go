// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/careerpath/internal/logging"
)

// APIResponse is the envelope every endpoint writes. Exactly one of Data
// and Error is set.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError is the error half of the envelope.
type APIError struct {
	// Code is one of the ErrCode constants.
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	// RequestID repeats the X-Request-ID so clients can quote it in reports.
	RequestID string `json:"request_id,omitempty"`
}

// APIMeta is attached to every response.
type APIMeta struct {
	RequestID  string    `json:"request_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMs int64     `json:"duration_ms,omitempty"`
	// Count is set on list responses only.
	Count *int `json:"count,omitempty"`
}

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeTimeout            = "TIMEOUT"
)

// statusCodes maps each status the API emits to its default error code.
var statusCodes = map[int]string{
	http.StatusBadRequest:          ErrCodeBadRequest,
	http.StatusNotFound:            ErrCodeNotFound,
	http.StatusMethodNotAllowed:    ErrCodeMethodNotAllowed,
	http.StatusTooManyRequests:     ErrCodeTooManyRequests,
	http.StatusInternalServerError: ErrCodeInternalError,
	http.StatusServiceUnavailable:  ErrCodeServiceUnavailable,
	http.StatusGatewayTimeout:      ErrCodeTimeout,
}

// ResponseWriter writes envelopes for one request.
type ResponseWriter struct {
	w       http.ResponseWriter
	r       *http.Request
	started time.Time
}

// NewResponseWriter starts the duration clock for r.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r, started: time.Now()}
}

// Success writes 200 with data.
func (rw *ResponseWriter) Success(data interface{}) {
	rw.write(http.StatusOK, APIResponse{Success: true, Data: data, Meta: rw.meta(nil)})
}

// SuccessList writes 200 with a list and its item count.
func (rw *ResponseWriter) SuccessList(data interface{}, count int) {
	rw.write(http.StatusOK, APIResponse{Success: true, Data: data, Meta: rw.meta(&count)})
}

// ErrorWithDetails writes an error envelope. An empty code is derived from
// the status.
func (rw *ResponseWriter) ErrorWithDetails(status int, code, message string, details interface{}) {
	if code == "" {
		code = statusCodes[status]
	}
	meta := rw.meta(nil)
	rw.write(status, APIResponse{
		Error: &APIError{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: meta.RequestID,
		},
		Meta: meta,
	})
}

func (rw *ResponseWriter) fail(status int, message string) {
	rw.ErrorWithDetails(status, "", message, nil)
}

// BadRequest writes 400 BAD_REQUEST.
func (rw *ResponseWriter) BadRequest(message string) { rw.fail(http.StatusBadRequest, message) }

// NotFound writes 404.
func (rw *ResponseWriter) NotFound(message string) { rw.fail(http.StatusNotFound, message) }

// MethodNotAllowed writes 405.
func (rw *ResponseWriter) MethodNotAllowed() {
	rw.fail(http.StatusMethodNotAllowed, "Method not allowed")
}

// TooManyRequests writes 429.
func (rw *ResponseWriter) TooManyRequests(message string) {
	rw.fail(http.StatusTooManyRequests, message)
}

// InternalError writes 500. The message must not leak internals.
func (rw *ResponseWriter) InternalError(message string) {
	rw.fail(http.StatusInternalServerError, message)
}

// ServiceUnavailable writes 503.
func (rw *ResponseWriter) ServiceUnavailable(message string) {
	rw.fail(http.StatusServiceUnavailable, message)
}

// GatewayTimeout writes 504 TIMEOUT when the request deadline expired.
func (rw *ResponseWriter) GatewayTimeout(message string) {
	rw.fail(http.StatusGatewayTimeout, message)
}

// ValidationError writes 400 VALIDATION_FAILED with field details.
func (rw *ResponseWriter) ValidationError(message string, details interface{}) {
	rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, message, details)
}

func (rw *ResponseWriter) meta(count *int) *APIMeta {
	return &APIMeta{
		RequestID:  logging.RequestIDFromContext(rw.r.Context()),
		Timestamp:  time.Now().UTC(),
		DurationMs: time.Since(rw.started).Milliseconds(),
		Count:      count,
	}
}

// write encodes before touching the status line so an unencodable payload
// still produces a well-formed 500.
func (rw *ResponseWriter) write(status int, body APIResponse) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("failed to encode response")
		status = http.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"success":false,"error":{"code":"INTERNAL_ERROR","message":"failed to encode response"}}` + "\n")
	}

	rw.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.w.WriteHeader(status)
	if _, err := rw.w.Write(buf.Bytes()); err != nil {
		logging.Ctx(rw.r.Context()).Debug().Err(err).Msg("client went away before response was written")
	}
}
