// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/tomtom215/careerpath/internal/catalog"
	"github.com/tomtom215/careerpath/internal/config"
)

const smallCatalogYAML = `version: "test-1"
fields:
  - name: Design
    specializations:
      - title: UX Designer
        required_skills: [Figma, User Research, Prototyping]
      - title: Graphic Designer
        required_skills: [Photoshop, Typography]
`

func writeCatalogFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(smallCatalogYAML), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestInitCatalog_Default(t *testing.T) {
	t.Parallel()

	cat, source, err := initCatalog(context.Background(), config.CatalogConfig{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("initCatalog() error: %v", err)
	}
	if source != sourceDefault {
		t.Errorf("source = %q, want %q", source, sourceDefault)
	}

	builtin, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if cat.Stats() != builtin.Stats() {
		t.Errorf("Stats() = %+v, want %+v", cat.Stats(), builtin.Stats())
	}
}

func TestInitCatalog_File(t *testing.T) {
	t.Parallel()

	cfg := config.CatalogConfig{Path: writeCatalogFile(t)}
	cat, source, err := initCatalog(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("initCatalog() error: %v", err)
	}
	if source != sourceFile {
		t.Errorf("source = %q, want %q", source, sourceFile)
	}
	if got := cat.Stats(); got.Fields != 1 || got.Specializations != 2 {
		t.Errorf("Stats() = %+v, want 1 field and 2 specializations", got)
	}
}

func TestInitCatalog_MissingFile(t *testing.T) {
	t.Parallel()

	cfg := config.CatalogConfig{Path: filepath.Join(t.TempDir(), "missing.yaml")}
	if _, _, err := initCatalog(context.Background(), cfg, zerolog.Nop()); err == nil {
		t.Fatal("expected error for a missing catalog file")
	}
}

func TestInitCatalog_StoreRoundTrip(t *testing.T) {
	t.Parallel()

	storePath := filepath.Join(t.TempDir(), "store")
	ctx := context.Background()

	// First boot reads the file and snapshots it.
	first, source, err := initCatalog(ctx, config.CatalogConfig{
		Path:      writeCatalogFile(t),
		StorePath: storePath,
		UseStore:  true,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("first initCatalog() error: %v", err)
	}
	if source != sourceFile {
		t.Fatalf("first source = %q, want %q", source, sourceFile)
	}

	// Second boot has no file and must come up from the snapshot.
	second, source, err := initCatalog(ctx, config.CatalogConfig{
		StorePath: storePath,
		UseStore:  true,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("second initCatalog() error: %v", err)
	}
	if source != sourceStore {
		t.Errorf("second source = %q, want %q", source, sourceStore)
	}
	if second.Stats() != first.Stats() {
		t.Errorf("Stats() = %+v, want %+v", second.Stats(), first.Stats())
	}
	if second.Version() != "test-1" {
		t.Errorf("Version() = %q, want test-1", second.Version())
	}
}

func TestInitCatalog_EmptyStoreFallsBackToDefault(t *testing.T) {
	t.Parallel()

	cfg := config.CatalogConfig{StorePath: filepath.Join(t.TempDir(), "store"), UseStore: true}
	_, source, err := initCatalog(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("initCatalog() error: %v", err)
	}
	if source != sourceDefault {
		t.Errorf("source = %q, want %q", source, sourceDefault)
	}
}
