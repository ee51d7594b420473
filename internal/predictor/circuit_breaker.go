// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package predictor

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/careerpath/internal/logging"
	"github.com/tomtom215/careerpath/internal/metrics"
)

// BreakerConfig tunes the circuit breaker around a Predictor.
type BreakerConfig struct {
	// Name labels logs and metrics.
	// Default: "predictor".
	Name string

	// MaxRequests allowed through while half-open.
	// Default: 3.
	MaxRequests uint32

	// Interval after which closed-state counts reset.
	// Default: 1m.
	Interval time.Duration

	// Timeout spent open before probing again.
	// Default: 2m.
	Timeout time.Duration

	// MinRequests needed in an interval before the breaker may trip.
	// Default: 10.
	MinRequests uint32

	// FailureRatio at or above which the breaker opens.
	// Default: 0.6.
	FailureRatio float64
}

// DefaultBreakerConfig returns the production breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:         "predictor",
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// BreakerPredictor wraps a Predictor with the circuit breaker pattern so a
// failing classifier is skipped quickly instead of costing every request its
// full timeout.
//
// The breaker runs on wall-clock time (sony/gobreaker); tests exercise the
// wrapped predictor through mocks rather than waiting on the breaker.
type BreakerPredictor struct {
	next Predictor
	cb   *gobreaker.CircuitBreaker[[]Prediction]
	name string
}

// NewBreakerPredictor wraps next. Zero-valued config fields take defaults.
func NewBreakerPredictor(next Predictor, cfg BreakerConfig) *BreakerPredictor {
	def := DefaultBreakerConfig()
	if cfg.Name == "" {
		cfg.Name = def.Name
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = def.MaxRequests
	}
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MinRequests == 0 {
		cfg.MinRequests = def.MinRequests
	}
	if cfg.FailureRatio <= 0 || cfg.FailureRatio > 1 {
		cfg.FailureRatio = def.FailureRatio
	}

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cfg.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]Prediction](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().
					Str("breaker", cfg.Name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// Caller cancellation says nothing about classifier health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerPredictor{next: next, cb: cb, name: cfg.Name}
}

// PredictField implements Predictor.
func (b *BreakerPredictor) PredictField(ctx context.Context, skillsText string) ([]Prediction, error) {
	return b.execute(func() ([]Prediction, error) {
		return b.next.PredictField(ctx, skillsText)
	})
}

// PredictSpecialization implements Predictor.
func (b *BreakerPredictor) PredictSpecialization(ctx context.Context, skillsText, field string) ([]Prediction, error) {
	return b.execute(func() ([]Prediction, error) {
		return b.next.PredictSpecialization(ctx, skillsText, field)
	})
}

// State returns the current breaker state as "closed", "half-open" or "open".
func (b *BreakerPredictor) State() string {
	return stateToString(b.cb.State())
}

func (b *BreakerPredictor) execute(fn func() ([]Prediction, error)) ([]Prediction, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return nil, errors.Join(ErrUnavailable, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
