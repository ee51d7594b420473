// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package main

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/tomtom215/careerpath/internal/catalog"
	"github.com/tomtom215/careerpath/internal/config"
	"github.com/tomtom215/careerpath/internal/predictor"
	"github.com/tomtom215/careerpath/internal/recommend"
	"github.com/tomtom215/careerpath/internal/supervisor"
	"github.com/tomtom215/careerpath/internal/supervisor/services"
)

// cacheMaintenanceInterval is how often expired result cache entries are purged.
const cacheMaintenanceInterval = time.Minute

// initPredictor builds the model source. A disabled predictor makes the
// ensemble run on the semantic and rule scorers alone.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initPredictor(cfg config.PredictorConfig, logger zerolog.Logger) (predictor.Predictor, error) {
	if !cfg.Enabled {
		logger.Info().Msg("Predictor disabled (PREDICTOR_ENABLED=false), using semantic and rule scorers only")
		return predictor.Disabled{}, nil
	}

	client, err := predictor.NewHTTPClient(predictor.HTTPConfig{
		BaseURL:           cfg.URL,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	})
	if err != nil {
		return nil, err
	}

	breaker := predictor.NewBreakerPredictor(client, predictor.BreakerConfig{
		Name:         "predictor",
		MaxRequests:  cfg.BreakerMaxRequests,
		Interval:     cfg.BreakerInterval,
		Timeout:      cfg.BreakerTimeout,
		MinRequests:  cfg.BreakerMinRequests,
		FailureRatio: cfg.BreakerFailureRatio,
	})

	logger.Info().
		Str("url", cfg.URL).
		Dur("timeout", cfg.Timeout).
		Float64("rps", cfg.RequestsPerSecond).
		Msg("Predictor enabled with circuit breaker")
	return breaker, nil
}

// initRecommend creates the engine and registers its cache maintenance with
// the engine layer of the supervisor tree.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, cat *catalog.Catalog, p predictor.Predictor, logger zerolog.Logger, tree *supervisor.SupervisorTree) (*recommend.Engine, error) {
	engineCfg := buildEngineConfig(cfg)

	logger.Info().
		Float64("weight_model", engineCfg.Weights.Model).
		Float64("weight_semantic", engineCfg.Weights.Semantic).
		Float64("weight_rule", engineCfg.Weights.Rule).
		Float64("target_boost", engineCfg.Boosts.EnsembleTarget).
		Bool("cache_enabled", engineCfg.Cache.Enabled).
		Msg("initializing recommendation engine")

	engine, err := recommend.NewEngine(engineCfg, cat, p, logger)
	if err != nil {
		return nil, err
	}

	if engineCfg.Cache.Enabled && tree != nil {
		tree.AddEngineService(services.NewCacheMaintenanceService(engine, cacheMaintenanceInterval, logger))
		logger.Info().Dur("interval", cacheMaintenanceInterval).Msg("cache maintenance added to supervisor tree")
	}

	return engine, nil
}

// buildEngineConfig creates the engine configuration from app config.
// Settings without an environment variable keep their engine defaults.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	r := cfg.Recommend
	engineCfg := recommend.DefaultConfig()

	engineCfg.Weights = recommend.SourceWeights{
		Model:    r.WeightModel,
		Semantic: r.WeightSemantic,
		Rule:     r.WeightRule,
	}
	engineCfg.Boosts = recommend.BoostConfig{
		FieldRule:          r.FieldBoost,
		SpecializationRule: r.SpecializationBoost,
		EnsembleTarget:     r.TargetBoost,
	}
	engineCfg.Scoring.RelatedThreshold = r.RelatedThreshold
	engineCfg.Scoring.PartialCredit = r.PartialCredit

	engineCfg.Limits = recommend.LimitsConfig{
		DefaultTopFields:          r.DefaultTopFields,
		DefaultTopSpecializations: r.DefaultTopSpecializations,
		MaxTop:                    r.MaxTop,
		MaxSkills:                 r.MaxSkills,
		PredictionTimeout:         r.PredictionTimeout,
	}
	engineCfg.Cache = recommend.CacheConfig{
		Enabled:    r.CacheEnabled,
		TTL:        r.CacheTTL,
		MaxEntries: r.CacheMaxEntries,
	}

	return engineCfg
}
