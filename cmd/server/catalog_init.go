// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tomtom215/careerpath/internal/catalog"
	"github.com/tomtom215/careerpath/internal/config"
	"github.com/tomtom215/careerpath/internal/metrics"
)

// catalogSource names where the running catalog came from.
type catalogSource string

const (
	sourceFile    catalogSource = "file"
	sourceStore   catalogSource = "store"
	sourceDefault catalogSource = "default"
)

// initCatalog resolves the catalog: CATALOG_PATH first, then the Badger
// snapshot when the store is enabled, then the built-in catalog. A catalog
// loaded from a file or the built-in set is written back to the store so the
// next boot can start without the file.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initCatalog(ctx context.Context, cfg config.CatalogConfig, logger zerolog.Logger) (*catalog.Catalog, catalogSource, error) {
	var store *catalog.BadgerStore
	if cfg.UseStore {
		var err error
		store, err = catalog.OpenBadgerStore(cfg.StorePath)
		if err != nil {
			return nil, "", err
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn().Err(err).Msg("failed to close catalog store")
			}
		}()
	}

	cat, source, err := resolveCatalog(ctx, cfg, store, logger)
	if err != nil {
		return nil, "", err
	}

	if store != nil && source != sourceStore {
		if err := store.Save(ctx, cat, cat.Version()); err != nil {
			logger.Warn().Err(err).Msg("failed to persist catalog snapshot")
		} else {
			logger.Info().Str("path", cfg.StorePath).Msg("catalog snapshot saved")
		}
	}

	stats := cat.Stats()
	metrics.SetCatalogStats(stats.Fields, stats.Specializations, stats.Skills)
	logger.Info().
		Str("source", string(source)).
		Int("fields", stats.Fields).
		Int("specializations", stats.Specializations).
		Int("skills", stats.Skills).
		Msg("catalog loaded")

	return cat, source, nil
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func resolveCatalog(ctx context.Context, cfg config.CatalogConfig, store *catalog.BadgerStore, logger zerolog.Logger) (*catalog.Catalog, catalogSource, error) {
	if cfg.Path != "" {
		cat, err := catalog.LoadFile(cfg.Path)
		if err != nil {
			return nil, "", err
		}
		return cat, sourceFile, nil
	}

	if store != nil {
		cat, err := store.Load(ctx)
		switch {
		case err == nil:
			return cat, sourceStore, nil
		case errors.Is(err, catalog.ErrSnapshotNotFound):
			logger.Info().Msg("no catalog snapshot stored, using built-in catalog")
		default:
			return nil, "", fmt.Errorf("load catalog snapshot: %w", err)
		}
	}

	cat, err := catalog.Default()
	if err != nil {
		return nil, "", fmt.Errorf("load built-in catalog: %w", err)
	}
	return cat, sourceDefault, nil
}
