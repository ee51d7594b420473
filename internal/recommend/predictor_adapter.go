// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/careerpath/internal/metrics"
	"github.com/tomtom215/careerpath/internal/predictor"
	"github.com/tomtom215/careerpath/internal/skills"
)

// PredictorAdapter turns classifier probabilities into Model source scores.
// It never returns an error: any predictor failure yields an empty list.
type PredictorAdapter struct {
	p      predictor.Predictor
	logger zerolog.Logger
}

// NewPredictorAdapter wraps p. A nil p behaves like predictor.Disabled.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPredictorAdapter(p predictor.Predictor, logger zerolog.Logger) *PredictorAdapter {
	if p == nil {
		p = predictor.Disabled{}
	}
	return &PredictorAdapter{p: p, logger: logger.With().Str("component", "predictor_adapter").Logger()}
}

// Enabled reports whether a real predictor is wired in.
func (a *PredictorAdapter) Enabled() bool {
	_, disabled := a.p.(predictor.Disabled)
	return !disabled
}

// FieldScores returns Model scores for fields.
func (a *PredictorAdapter) FieldScores(ctx context.Context, skillsText string) []SourceScore {
	scores, _ := a.fieldScores(ctx, skillsText)
	return scores
}

// SpecializationScores returns Model scores for specializations within field.
func (a *PredictorAdapter) SpecializationScores(ctx context.Context, skillsText, field string) []SourceScore {
	scores, _ := a.specializationScores(ctx, skillsText, field)
	return scores
}

// fieldScores and specializationScores also report whether the predictor
// answered, which an empty list alone cannot tell.
func (a *PredictorAdapter) fieldScores(ctx context.Context, skillsText string) ([]SourceScore, bool) {
	start := time.Now()
	preds, err := a.p.PredictField(ctx, skillsText)
	return a.convert(ctx, "field", "", preds, err, start)
}

func (a *PredictorAdapter) specializationScores(ctx context.Context, skillsText, field string) ([]SourceScore, bool) {
	start := time.Now()
	preds, err := a.p.PredictSpecialization(ctx, skillsText, field)
	return a.convert(ctx, "specialization", field, preds, err, start)
}

func (a *PredictorAdapter) convert(ctx context.Context, op, field string, preds []predictor.Prediction, err error, start time.Time) ([]SourceScore, bool) {
	elapsed := time.Since(start)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			outcome = metrics.OutcomeTimeout
		}
		metrics.RecordPredictorCall(op, outcome, elapsed)

		ev := a.logger.Warn()
		if errors.Is(err, predictor.ErrUnavailable) {
			// Disabled or open circuit.
			ev = a.logger.Debug()
		}
		ev.Err(fmt.Errorf("%w: %w", ErrPredictorUnavailable, err)).
			Str("operation", op).
			Str("field", field).
			Dur("elapsed", elapsed).
			Msg("predictor call failed, continuing without model scores")
		return []SourceScore{}, false
	}
	metrics.RecordPredictorCall(op, metrics.OutcomeOK, elapsed)

	out := make([]SourceScore, 0, len(preds))
	for _, p := range preds {
		if p.Name == "" {
			continue
		}
		out = append(out, SourceScore{
			Source:         SourceModel,
			TargetName:     p.Name,
			RawScore:       clampPercent(p.Probability * 100),
			MatchingSkills: []string{},
			SimilarSkills:  map[string]skills.SimilarMatch{},
		})
	}
	sortSourceScores(out)
	return out, true
}
