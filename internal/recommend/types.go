// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/careerpath/internal/predictor"
	"github.com/tomtom215/careerpath/internal/skills"
)

var (
	// ErrEmptyCatalog is returned when no fields or specializations are loaded.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrEmptySkillInput is returned when the request carries no usable skill.
	ErrEmptySkillInput = errors.New("at least one skill is required")

	// ErrPredictorUnavailable marks a failed predictor call. It never leaves
	// the engine; the model source is simply empty for that request.
	ErrPredictorUnavailable = predictor.ErrUnavailable
)

// Source identifies one of the independent scorers merged by the ensemble.
// Lower values win ties.
type Source int

const (
	// SourceModel is the external trained classifier.
	SourceModel Source = iota
	// SourceSemantic is the similarity-aware skill-gap scorer.
	SourceSemantic
	// SourceRule is the exact-overlap scorer.
	SourceRule
)

// String returns the lower-case source name.
func (s Source) String() string {
	switch s {
	case SourceModel:
		return "model"
	case SourceSemantic:
		return "semantic"
	case SourceRule:
		return "rule"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Source) UnmarshalText(b []byte) error {
	switch string(b) {
	case "model":
		*s = SourceModel
	case "semantic":
		*s = SourceSemantic
	case "rule":
		*s = SourceRule
	default:
		return fmt.Errorf("unknown source %q", string(b))
	}
	return nil
}

// SourceScore is one source's opinion of one candidate.
type SourceScore struct {
	Source         Source                         `json:"source"`
	TargetName     string                         `json:"target_name"`
	RawScore       float64                        `json:"raw_score"`
	MatchingSkills []string                       `json:"matching_skills"`
	SimilarSkills  map[string]skills.SimilarMatch `json:"similar_skills"`
}

// Contribution is a source's weighted input to a CombinedScore.
type Contribution struct {
	Source   Source  `json:"source"`
	RawScore float64 `json:"raw_score"`
	Weighted float64 `json:"weighted"`
}

// CombinedScore is a candidate after the ensemble merge.
type CombinedScore struct {
	Name       string  `json:"name"`
	FinalScore float64 `json:"final_score"`

	// Contributions are ordered by source priority.
	Contributions []Contribution `json:"contributions"`

	MatchingSkills []string                       `json:"matching_skills"`
	SimilarSkills  map[string]skills.SimilarMatch `json:"similar_skills"`

	// IsCurrent is set when the candidate is the user's current position.
	IsCurrent bool `json:"is_current"`

	// Consensus is set when every source that produced scores ranked this
	// candidate first.
	Consensus bool `json:"consensus,omitempty"`
}

// SourceCount returns the number of sources that scored the candidate.
func (c *CombinedScore) SourceCount() int {
	return len(c.Contributions)
}

// Sources returns the contributing sources in priority order.
func (c *CombinedScore) Sources() []Source {
	out := make([]Source, len(c.Contributions))
	for i, ct := range c.Contributions {
		out[i] = ct.Source
	}
	return out
}

// FieldScore is a ranked field.
type FieldScore struct {
	CombinedScore
}

// SpecScore is a ranked specialization within FieldName.
type SpecScore struct {
	CombinedScore
	FieldName string `json:"field_name"`
}

// Relevance grades a key strength.
type Relevance string

// Relevance values.
const (
	RelevanceHigh   Relevance = "high"
	RelevanceMedium Relevance = "medium"
)

// Difficulty grades how hard the transition into the top match is.
type Difficulty string

// Difficulty values.
const (
	DifficultyHigh   Difficulty = "High"
	DifficultyMedium Difficulty = "Medium"
	DifficultyLow    Difficulty = "Low"
)

// KeyStrength is a user skill that recurs across the top-ranked fields.
type KeyStrength struct {
	Skill       string    `json:"skill"`
	Relevance   Relevance `json:"relevance"`
	Occurrences int       `json:"occurrences"`
}

// DevelopmentArea is a missing skill worth acquiring.
type DevelopmentArea struct {
	Skill      string    `json:"skill"`
	Importance Relevance `json:"importance"`
}

// Explanation is the human-readable account of a recommendation.
type Explanation struct {
	Summary              string            `json:"summary"`
	KeyStrengths         []KeyStrength     `json:"key_strengths"`
	DevelopmentAreas     []DevelopmentArea `json:"development_areas"`
	TransitionDifficulty Difficulty        `json:"transition_difficulty"`
	TimeEstimate         string            `json:"time_estimate"`
}

// Request is one recommendation call.
type Request struct {
	// Skills the user claims. At least one non-blank entry is required.
	Skills []string `json:"skills"`

	// CurrentField is the user's current field, if any.
	CurrentField string `json:"current_field,omitempty"`

	// CurrentSpecialization is the user's current specialization, if any.
	CurrentSpecialization string `json:"current_specialization,omitempty"`

	// TopFields limits the ranked field list.
	// Defaults to Config.Limits.DefaultTopFields if zero.
	TopFields int `json:"top_fields,omitempty"`

	// TopSpecializations limits the ranked specialization list.
	// Defaults to Config.Limits.DefaultTopSpecializations if zero.
	TopSpecializations int `json:"top_specializations,omitempty"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// RecommendationResult is the answer to a Request. Every collection is
// non-nil so callers never have to distinguish absent from empty.
type RecommendationResult struct {
	RankedFields          []FieldScore `json:"ranked_fields"`
	RankedSpecializations []SpecScore  `json:"ranked_specializations"`

	// TargetSpecialization is the top-ranked specialization that the skill
	// gap was computed against. Empty when no specialization ranked.
	TargetSpecialization string `json:"target_specialization"`

	// MissingSkills of the target, most important first.
	MissingSkills []string `json:"missing_skills"`

	// SkillGap is the full analysis against the target.
	SkillGap skills.Gap `json:"skill_gap"`

	Explanation Explanation `json:"explanation"`

	Metadata ResultMetadata `json:"metadata"`
}

// ResultMetadata contains timing and diagnostic information.
type ResultMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// SourcesUsed lists the sources that scored at least one field.
	SourcesUsed []string `json:"sources_used"`

	// PredictorAvailable reports whether the model source answered.
	PredictorAvailable bool `json:"predictor_available"`

	// LatencyMS is the total recommendation latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// CacheHit indicates whether the result was served from cache.
	CacheHit bool `json:"cache_hit"`
}
