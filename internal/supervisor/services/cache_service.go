// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// defaultCacheSweepInterval is used when no interval is configured.
const defaultCacheSweepInterval = time.Minute

// CacheCleaner is the engine surface the maintenance service needs.
// *recommend.Engine satisfies it.
type CacheCleaner interface {
	// CleanupCache drops expired results and returns how many were removed.
	CleanupCache() int
}

// CacheMaintenanceService periodically evicts expired recommendation
// results from the engine cache.
type CacheMaintenanceService struct {
	cleaner  CacheCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheMaintenanceService creates the sweeper. A non-positive interval
// uses one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheMaintenanceService(cleaner CacheCleaner, interval time.Duration, logger zerolog.Logger) *CacheMaintenanceService {
	if interval <= 0 {
		interval = defaultCacheSweepInterval
	}
	return &CacheMaintenanceService{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger.With().Str("service", "cache-maintenance").Logger(),
		name:     "cache-maintenance",
	}
}

// Serve implements suture.Service.
func (s *CacheMaintenanceService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("cache maintenance starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if removed := s.cleaner.CleanupCache(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired results evicted")
			}
		}
	}
}

// String identifies the service in supervisor events.
func (s *CacheMaintenanceService) String() string {
	return s.name
}
