// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

// Package predictor is the boundary to the external trained classifier that
// scores fields and specializations from free-text skills.
//
// Implementations:
//   - HTTPClient: JSON over HTTP to a classifier service, client-side rate limited
//   - BreakerPredictor: wraps any Predictor with a circuit breaker
//   - Disabled: always unavailable, used when no classifier is configured
//
// Callers must treat every error as "no model signal"; none of them are fatal.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrUnavailable is returned when the predictor cannot be reached or is
// switched off.
var ErrUnavailable = errors.New("predictor unavailable")

// Prediction is one (name, probability) pair returned by the classifier.
type Prediction struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
}

// Predictor scores fields and the specializations within a field.
//
// Thread Safety: implementations must be safe for concurrent use.
type Predictor interface {
	// PredictField returns field probabilities for the given skills text.
	PredictField(ctx context.Context, skillsText string) ([]Prediction, error)

	// PredictSpecialization returns specialization probabilities within field.
	PredictSpecialization(ctx context.Context, skillsText, field string) ([]Prediction, error)
}

// Disabled is a Predictor that is never available.
type Disabled struct{}

// PredictField always returns ErrUnavailable.
func (Disabled) PredictField(context.Context, string) ([]Prediction, error) {
	return nil, ErrUnavailable
}

// PredictSpecialization always returns ErrUnavailable.
func (Disabled) PredictSpecialization(context.Context, string, string) ([]Prediction, error) {
	return nil, ErrUnavailable
}

// validatePredictions rejects responses that do not satisfy the contract:
// every entry needs a name and a probability in [0, 1].
func validatePredictions(preds []Prediction) error {
	for i, p := range preds {
		if p.Name == "" {
			return fmt.Errorf("prediction %d: empty name", i)
		}
		if math.IsNaN(p.Probability) || p.Probability < 0 || p.Probability > 1 {
			return fmt.Errorf("prediction %d (%s): probability %v outside [0, 1]", i, p.Name, p.Probability)
		}
	}
	return nil
}
