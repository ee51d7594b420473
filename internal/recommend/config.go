// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package recommend

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/careerpath/internal/skills"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the per-source multiplier applied before averaging.
	Weights SourceWeights `json:"weights"`

	// Boosts contains the flat bonuses for the user's current position.
	Boosts BoostConfig `json:"boosts"`

	// Scoring contains the skill similarity and partial-credit constants.
	Scoring skills.Scoring `json:"scoring"`

	// Explanation tunes the generated explanation.
	Explanation ExplanationConfig `json:"explanation"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache"`
}

// SourceWeights are the ensemble multipliers for each source. They are not
// normalized: a candidate's score is the mean of raw_score*weight over the
// sources that scored it.
type SourceWeights struct {
	// Model is the weight of the external predictor.
	// Default: 0.4.
	Model float64 `json:"model"`

	// Semantic is the weight of the similarity-aware scorer.
	// Default: 0.4.
	Semantic float64 `json:"semantic"`

	// Rule is the weight of the exact-overlap scorer.
	// Default: 0.2.
	Rule float64 `json:"rule"`
}

// For returns the weight of source s.
func (w SourceWeights) For(s Source) float64 {
	switch s {
	case SourceModel:
		return w.Model
	case SourceSemantic:
		return w.Semantic
	case SourceRule:
		return w.Rule
	default:
		return 0
	}
}

// BoostConfig contains the current-position bonuses.
type BoostConfig struct {
	// FieldRule is added to the rule score of the user's current field.
	// Default: 10.
	FieldRule float64 `json:"field_rule"`

	// SpecializationRule is added to the rule score of the user's current
	// specialization.
	// Default: 0.
	SpecializationRule float64 `json:"specialization_rule"`

	// EnsembleTarget is added to the final score of the current field or
	// specialization after averaging.
	// Default: 5.
	EnsembleTarget float64 `json:"ensemble_target"`
}

// ExplanationConfig tunes the explanation generator.
type ExplanationConfig struct {
	// StrengthFields is how many top-ranked fields are scanned for key strengths.
	// Default: 3.
	StrengthFields int `json:"strength_fields"`

	// MinStrengthOccurrences is how many of those fields a skill must appear
	// in to count as a key strength.
	// Default: 2.
	MinStrengthOccurrences int `json:"min_strength_occurrences"`

	// HighRelevanceOccurrences is the appearance count that tags a strength
	// as high relevance.
	// Default: 3.
	HighRelevanceOccurrences int `json:"high_relevance_occurrences"`

	// MaxDevelopmentAreas caps the development area list.
	// Default: 5.
	MaxDevelopmentAreas int `json:"max_development_areas"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultTopFields is the number of fields returned when the request
	// does not say.
	// Default: 5.
	DefaultTopFields int `json:"default_top_fields"`

	// DefaultTopSpecializations is the number of specializations returned
	// when the request does not say.
	// Default: 3.
	DefaultTopSpecializations int `json:"default_top_specializations"`

	// MaxTop caps any requested top-N.
	// Default: 20.
	MaxTop int `json:"max_top"`

	// MaxSkills caps the number of distinct skills accepted per request.
	// Default: 200.
	MaxSkills int `json:"max_skills"`

	// PredictionTimeout bounds how long the engine waits on the predictor.
	// Default: 2s.
	PredictionTimeout time.Duration `json:"prediction_timeout"`
}

// CacheConfig contains result caching parameters.
type CacheConfig struct {
	// Enabled controls whether caching is active.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached entries.
	// Default: 10000.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: SourceWeights{
			Model:    0.4,
			Semantic: 0.4,
			Rule:     0.2,
		},
		Boosts: BoostConfig{
			FieldRule:          10,
			SpecializationRule: 0,
			EnsembleTarget:     5,
		},
		Scoring: skills.DefaultScoring(),
		Explanation: ExplanationConfig{
			StrengthFields:           3,
			MinStrengthOccurrences:   2,
			HighRelevanceOccurrences: 3,
			MaxDevelopmentAreas:      5,
		},
		Limits: LimitsConfig{
			DefaultTopFields:          5,
			DefaultTopSpecializations: 3,
			MaxTop:                    20,
			MaxSkills:                 200,
			PredictionTimeout:         2 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	w := c.Weights
	if w.Model < 0 || w.Semantic < 0 || w.Rule < 0 {
		return fmt.Errorf("weights must be non-negative, got model=%f semantic=%f rule=%f", w.Model, w.Semantic, w.Rule)
	}
	if w.Model+w.Semantic+w.Rule == 0 {
		return fmt.Errorf("at least one source weight must be positive")
	}

	b := c.Boosts
	if b.FieldRule < 0 || b.FieldRule > 100 {
		return fmt.Errorf("boosts.field_rule must be in [0, 100], got %f", b.FieldRule)
	}
	if b.SpecializationRule < 0 || b.SpecializationRule > 100 {
		return fmt.Errorf("boosts.specialization_rule must be in [0, 100], got %f", b.SpecializationRule)
	}
	if b.EnsembleTarget < 0 || b.EnsembleTarget > 100 {
		return fmt.Errorf("boosts.ensemble_target must be in [0, 100], got %f", b.EnsembleTarget)
	}

	if err := c.Scoring.Validate(); err != nil {
		return err
	}

	e := c.Explanation
	if e.StrengthFields < 1 {
		return fmt.Errorf("explanation.strength_fields must be positive, got %d", e.StrengthFields)
	}
	if e.MinStrengthOccurrences < 1 {
		return fmt.Errorf("explanation.min_strength_occurrences must be positive, got %d", e.MinStrengthOccurrences)
	}
	if e.HighRelevanceOccurrences < e.MinStrengthOccurrences {
		return fmt.Errorf("explanation.high_relevance_occurrences must be >= min_strength_occurrences, got %d < %d",
			e.HighRelevanceOccurrences, e.MinStrengthOccurrences)
	}
	if e.MaxDevelopmentAreas < 0 {
		return fmt.Errorf("explanation.max_development_areas must be non-negative, got %d", e.MaxDevelopmentAreas)
	}

	l := c.Limits
	if l.DefaultTopFields < 1 {
		return fmt.Errorf("limits.default_top_fields must be positive, got %d", l.DefaultTopFields)
	}
	if l.DefaultTopSpecializations < 1 {
		return fmt.Errorf("limits.default_top_specializations must be positive, got %d", l.DefaultTopSpecializations)
	}
	if l.MaxTop < l.DefaultTopFields || l.MaxTop < l.DefaultTopSpecializations {
		return fmt.Errorf("limits.max_top must be >= both defaults, got %d", l.MaxTop)
	}
	if l.MaxSkills < 1 {
		return fmt.Errorf("limits.max_skills must be positive, got %d", l.MaxSkills)
	}
	if l.PredictionTimeout <= 0 {
		return fmt.Errorf("limits.prediction_timeout must be positive, got %v", l.PredictionTimeout)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive when caching is enabled, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive when caching is enabled, got %d", c.Cache.MaxEntries)
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types
	cp := *c
	return &cp
}

// MarshalJSON implements custom JSON marshaling for duration fields.
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	return json.Marshal(&struct {
		*Alias
		Limits struct {
			DefaultTopFields          int    `json:"default_top_fields"`
			DefaultTopSpecializations int    `json:"default_top_specializations"`
			MaxTop                    int    `json:"max_top"`
			MaxSkills                 int    `json:"max_skills"`
			PredictionTimeout         string `json:"prediction_timeout"`
		} `json:"limits"`
		Cache struct {
			Enabled    bool   `json:"enabled"`
			TTL        string `json:"ttl"`
			MaxEntries int    `json:"max_entries"`
		} `json:"cache"`
	}{
		Alias: (*Alias)(c),
		Limits: struct {
			DefaultTopFields          int    `json:"default_top_fields"`
			DefaultTopSpecializations int    `json:"default_top_specializations"`
			MaxTop                    int    `json:"max_top"`
			MaxSkills                 int    `json:"max_skills"`
			PredictionTimeout         string `json:"prediction_timeout"`
		}{
			DefaultTopFields:          c.Limits.DefaultTopFields,
			DefaultTopSpecializations: c.Limits.DefaultTopSpecializations,
			MaxTop:                    c.Limits.MaxTop,
			MaxSkills:                 c.Limits.MaxSkills,
			PredictionTimeout:         c.Limits.PredictionTimeout.String(),
		},
		Cache: struct {
			Enabled    bool   `json:"enabled"`
			TTL        string `json:"ttl"`
			MaxEntries int    `json:"max_entries"`
		}{
			Enabled:    c.Cache.Enabled,
			TTL:        c.Cache.TTL.String(),
			MaxEntries: c.Cache.MaxEntries,
		},
	})
}
