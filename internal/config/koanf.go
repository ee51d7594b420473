// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/careerpath/config.yaml",
	"/etc/careerpath/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              8080,
			Host:              "0.0.0.0",
			Timeout:           30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			Environment:       "development",
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Path:      "",
			StorePath: "/data/catalog",
			UseStore:  false,
		},
		Predictor: PredictorConfig{
			Enabled:             false, // Model source is opt-in
			URL:                 "",
			Timeout:             2 * time.Second,
			RequestsPerSecond:   0, // Unlimited
			Burst:               10,
			BreakerMaxRequests:  3,
			BreakerInterval:     1 * time.Minute,
			BreakerTimeout:      2 * time.Minute,
			BreakerMinRequests:  10,
			BreakerFailureRatio: 0.6,
		},
		Recommend: RecommendConfig{
			WeightModel:               0.4,
			WeightSemantic:            0.4,
			WeightRule:                0.2,
			FieldBoost:                10,
			SpecializationBoost:       0,
			TargetBoost:               5,
			RelatedThreshold:          0.8,
			PartialCredit:             0.5,
			DefaultTopFields:          5,
			DefaultTopSpecializations: 3,
			MaxTop:                    20,
			MaxSkills:                 200,
			PredictionTimeout:         2 * time.Second,
			CacheEnabled:              true,
			CacheTTL:                  5 * time.Minute,
			CacheMaxEntries:           10000,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// HTTP_PORT -> server.port, PREDICTOR_URL -> predictor.url
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",
	"cors_origins":          "server.cors_origins",
	"rate_limit_requests":   "server.rate_limit_reqs",
	"rate_limit_window":     "server.rate_limit_window",
	"disable_rate_limit":    "server.rate_limit_disabled",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog mappings
	"catalog_path":       "catalog.path",
	"catalog_store_path": "catalog.store_path",
	"catalog_use_store":  "catalog.use_store",

	// Predictor mappings
	"predictor_enabled":               "predictor.enabled",
	"predictor_url":                   "predictor.url",
	"predictor_timeout":               "predictor.timeout",
	"predictor_rps":                   "predictor.requests_per_second",
	"predictor_burst":                 "predictor.burst",
	"predictor_breaker_max_requests":  "predictor.breaker_max_requests",
	"predictor_breaker_interval":      "predictor.breaker_interval",
	"predictor_breaker_timeout":       "predictor.breaker_timeout",
	"predictor_breaker_min_requests":  "predictor.breaker_min_requests",
	"predictor_breaker_failure_ratio": "predictor.breaker_failure_ratio",

	// Recommendation engine mappings
	"recommend_weight_model":                "recommend.weight_model",
	"recommend_weight_semantic":             "recommend.weight_semantic",
	"recommend_weight_rule":                 "recommend.weight_rule",
	"recommend_field_boost":                 "recommend.field_boost",
	"recommend_specialization_boost":        "recommend.specialization_boost",
	"recommend_target_boost":                "recommend.target_boost",
	"recommend_related_threshold":           "recommend.related_threshold",
	"recommend_partial_credit":              "recommend.partial_credit",
	"recommend_default_top_fields":          "recommend.default_top_fields",
	"recommend_default_top_specializations": "recommend.default_top_specializations",
	"recommend_max_top":                     "recommend.max_top",
	"recommend_max_skills":                  "recommend.max_skills",
	"recommend_prediction_timeout":          "recommend.prediction_timeout",
	"recommend_cache_enabled":               "recommend.cache_enabled",
	"recommend_cache_ttl":                   "recommend.cache_ttl",
	"recommend_cache_max_entries":           "recommend.cache_max_entries",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - PREDICTOR_URL -> predictor.url
//   - RECOMMEND_CACHE_TTL -> recommend.cache_ttl
func envTransformFunc(key string) string {
	// Unmapped keys return "" so unrelated environment variables are skipped.
	return envMappings[strings.ToLower(key)]
}
