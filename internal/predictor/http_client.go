// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package predictor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// maxErrorBodySize limits how much of an error response is kept for diagnostics.
const maxErrorBodySize = 64 * 1024 // 64KB

// HTTPConfig configures the classifier HTTP client.
type HTTPConfig struct {
	// BaseURL of the classifier service, e.g. http://localhost:8500.
	BaseURL string

	// Timeout bounds a single HTTP round trip.
	// Default: 2s.
	Timeout time.Duration

	// RequestsPerSecond caps the outgoing call rate. Zero disables limiting.
	RequestsPerSecond float64

	// Burst is the limiter bucket size.
	// Default: 10.
	Burst int
}

// HTTPClient calls a classifier service speaking a small JSON protocol:
//
//	POST {base}/predict/field           {"skills_text": "..."}
//	POST {base}/predict/specialization  {"skills_text": "...", "field": "..."}
//
// Both return {"predictions": [{"name": "...", "probability": 0.42}, ...]}.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

type predictRequest struct {
	SkillsText string `json:"skills_text"`
	Field      string `json:"field,omitempty"`
}

type predictResponse struct {
	Predictions []Prediction `json:"predictions"`
}

// NewHTTPClient creates a classifier client.
func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("predictor base URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 10
	}

	limiter := rate.NewLimiter(rate.Inf, cfg.Burst)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
	}, nil
}

// PredictField implements Predictor.
func (c *HTTPClient) PredictField(ctx context.Context, skillsText string) ([]Prediction, error) {
	return c.post(ctx, "/predict/field", predictRequest{SkillsText: skillsText})
}

// PredictSpecialization implements Predictor.
func (c *HTTPClient) PredictSpecialization(ctx context.Context, skillsText, field string) ([]Prediction, error) {
	return c.post(ctx, "/predict/specialization", predictRequest{SkillsText: skillsText, Field: field})
}

func (c *HTTPClient) post(ctx context.Context, path string, body predictRequest) ([]Prediction, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(readBodyForError(resp.Body)))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if err := validatePredictions(out.Predictions); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}
	return out.Predictions, nil
}

// readBodyForError reads at most maxErrorBodySize bytes of r for error messages.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
