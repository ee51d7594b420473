// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package config

import (
	"fmt"
	"strings"
	"time"
)

// Rate limiting bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = 1 * time.Second
	maxRateLimitWindow   = 1 * time.Hour
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validatePredictor(); err != nil {
		return err
	}

	return c.validateRecommend()
}

// validEnvironments defines the allowed environment modes
var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects a wildcard origin in production.
func (c *Config) validateCORS() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com " +
			"or use ENVIRONMENT=development for testing purposes")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Server.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration should be flagged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS()
}

// validateRateLimits validates rate limiting bounds
func (c *Config) validateRateLimits() error {
	if c.Server.RateLimitDisabled {
		return nil
	}
	if c.Server.RateLimitReqs < minRateLimitRequests || c.Server.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Server.RateLimitWindow < minRateLimitWindow || c.Server.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateCatalog validates catalog source configuration
func (c *Config) validateCatalog() error {
	if c.Catalog.UseStore && strings.TrimSpace(c.Catalog.StorePath) == "" {
		return fmt.Errorf("CATALOG_STORE_PATH is required when CATALOG_USE_STORE=true")
	}
	return nil
}

// validatePredictor validates predictor configuration (only if enabled)
func (c *Config) validatePredictor() error {
	p := c.Predictor
	if !p.Enabled {
		return nil
	}

	if p.URL == "" {
		return fmt.Errorf("PREDICTOR_URL is required when PREDICTOR_ENABLED=true")
	}
	if err := checkServiceURL(p.URL); err != nil {
		return fmt.Errorf("PREDICTOR_URL is invalid: %w", err)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("PREDICTOR_TIMEOUT must be positive")
	}
	if p.RequestsPerSecond < 0 {
		return fmt.Errorf("PREDICTOR_RPS must be non-negative (0 = unlimited)")
	}
	if p.Burst < 1 {
		return fmt.Errorf("PREDICTOR_BURST must be at least 1")
	}
	if p.BreakerFailureRatio <= 0 || p.BreakerFailureRatio > 1 {
		return fmt.Errorf("PREDICTOR_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	if p.BreakerMinRequests == 0 {
		return fmt.Errorf("PREDICTOR_BREAKER_MIN_REQUESTS must be at least 1")
	}
	if p.BreakerTimeout <= 0 {
		return fmt.Errorf("PREDICTOR_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateRecommend validates the ranges the engine cannot repair itself.
// The engine re-validates the mapped recommend.Config at construction.
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.WeightModel < 0 || r.WeightSemantic < 0 || r.WeightRule < 0 {
		return fmt.Errorf("RECOMMEND_WEIGHT_* must be non-negative")
	}
	if r.WeightModel+r.WeightSemantic+r.WeightRule == 0 {
		return fmt.Errorf("at least one RECOMMEND_WEIGHT_* must be positive")
	}
	if r.RelatedThreshold <= 0 || r.RelatedThreshold > 1 {
		return fmt.Errorf("RECOMMEND_RELATED_THRESHOLD must be in (0, 1]")
	}
	if r.PartialCredit < 0 || r.PartialCredit > 1 {
		return fmt.Errorf("RECOMMEND_PARTIAL_CREDIT must be in [0, 1]")
	}
	if r.PredictionTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_PREDICTION_TIMEOUT must be positive")
	}
	if r.MaxTop < 1 {
		return fmt.Errorf("RECOMMEND_MAX_TOP must be at least 1")
	}
	if r.CacheEnabled && r.CacheTTL <= 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when caching is enabled")
	}
	return nil
}
