// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Configuration Categories:
//
//  1. Server: HTTP listener, CORS and rate limiting
//  2. Logging: Log level, format and caller info
//  3. Catalog: Where the field/specialization catalog is loaded from
//  4. Predictor: Optional external classifier service
//  5. Recommend: Ensemble weights, boosts, similarity constants and limits
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	srv := http.Server{Addr: cfg.Server.Addr()}
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Predictor PredictorConfig `koanf:"predictor"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production" (default: "development")

	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// CatalogConfig controls where the catalog comes from.
//
// Resolution order at startup:
//  1. Path, when set (YAML or JSON file)
//  2. The Badger snapshot at StorePath, when UseStore is true and a snapshot exists
//  3. The built-in default catalog
//
// Environment Variables:
//   - CATALOG_PATH: Catalog document path
//   - CATALOG_STORE_PATH: Badger directory for catalog snapshots
//   - CATALOG_USE_STORE: Read from and write to the snapshot store (default: false)
type CatalogConfig struct {
	Path      string `koanf:"path"`
	StorePath string `koanf:"store_path"`
	UseStore  bool   `koanf:"use_store"`
}

// PredictorConfig configures the optional external classifier.
//
// Environment Variables:
//   - PREDICTOR_ENABLED: Enable the model source (default: false)
//   - PREDICTOR_URL: Base URL of the classifier service
//   - PREDICTOR_TIMEOUT: Per-request HTTP timeout (default: 2s)
//   - PREDICTOR_RPS / PREDICTOR_BURST: Client-side rate limit (0 = unlimited)
//   - PREDICTOR_BREAKER_*: Circuit breaker thresholds
type PredictorConfig struct {
	Enabled           bool          `koanf:"enabled"`
	URL               string        `koanf:"url"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`

	BreakerMaxRequests  uint32        `koanf:"breaker_max_requests"`
	BreakerInterval     time.Duration `koanf:"breaker_interval"`
	BreakerTimeout      time.Duration `koanf:"breaker_timeout"`
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
}

// RecommendConfig holds the tunable constants of the recommendation engine.
// Every value maps onto recommend.Config; see cmd/server for the mapping.
type RecommendConfig struct {
	// Ensemble source weights. Default: 0.4 / 0.4 / 0.2.
	WeightModel    float64 `koanf:"weight_model"`
	WeightSemantic float64 `koanf:"weight_semantic"`
	WeightRule     float64 `koanf:"weight_rule"`

	// FieldBoost is added to the rule score of the current field. Default: 10.
	FieldBoost float64 `koanf:"field_boost"`
	// SpecializationBoost is added to the rule score of the current
	// specialization. Default: 0.
	SpecializationBoost float64 `koanf:"specialization_boost"`
	// TargetBoost is added to the final score of the current field or
	// specialization. Default: 5.
	TargetBoost float64 `koanf:"target_boost"`

	// RelatedThreshold is the similarity at which a skill is transferable. Default: 0.8.
	RelatedThreshold float64 `koanf:"related_threshold"`
	// PartialCredit is the weight of a transferable skill. Default: 0.5.
	PartialCredit float64 `koanf:"partial_credit"`

	DefaultTopFields          int           `koanf:"default_top_fields"`
	DefaultTopSpecializations int           `koanf:"default_top_specializations"`
	MaxTop                    int           `koanf:"max_top"`
	MaxSkills                 int           `koanf:"max_skills"`
	PredictionTimeout         time.Duration `koanf:"prediction_timeout"`

	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration with the following precedence (highest wins):
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
