// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key layout for BadgerDB storage.
const (
	snapshotKey     = "catalog:snapshot"
	snapshotMetaKey = "catalog:meta"
)

// ErrSnapshotNotFound is returned by Load when no catalog has been saved.
var ErrSnapshotNotFound = errors.New("catalog snapshot not found")

// SnapshotMeta describes the stored snapshot.
type SnapshotMeta struct {
	SavedAt time.Time `json:"saved_at"`
	Version string    `json:"version,omitempty"`
	Stats   Stats     `json:"stats"`
}

// BadgerStore persists catalog snapshots in BadgerDB so a process can boot
// without a catalog file.
type BadgerStore struct {
	db     *badger.DB
	ownsDB bool
}

// NewBadgerStore wraps an already open database. Close leaves it open.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// OpenBadgerStore opens (or creates) a BadgerDB at path. An empty path opens
// an in-memory database.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for catalog: %w", err)
	}
	return &BadgerStore{db: db, ownsDB: true}, nil
}

// Save replaces the stored snapshot with c.
func (s *BadgerStore) Save(ctx context.Context, c *Catalog, version string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(c.Document())
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	meta, err := json.Marshal(SnapshotMeta{SavedAt: time.Now().UTC(), Version: version, Stats: c.Stats()})
	if err != nil {
		return fmt.Errorf("marshal snapshot meta: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(snapshotKey), data); err != nil {
			return fmt.Errorf("set catalog snapshot: %w", err)
		}
		if err := txn.Set([]byte(snapshotMetaKey), meta); err != nil {
			return fmt.Errorf("set snapshot meta: %w", err)
		}
		return nil
	})
}

// Load rebuilds the stored catalog.
func (s *BadgerStore) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc Document
	if err := s.get(snapshotKey, &doc); err != nil {
		return nil, err
	}
	return New(&doc)
}

// Meta returns information about the stored snapshot.
func (s *BadgerStore) Meta(ctx context.Context) (SnapshotMeta, error) {
	var meta SnapshotMeta
	if err := ctx.Err(); err != nil {
		return meta, err
	}
	err := s.get(snapshotMetaKey, &meta)
	return meta, err
}

func (s *BadgerStore) get(key string, out any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrSnapshotNotFound
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
}

// Close closes the database if the store opened it.
func (s *BadgerStore) Close() error {
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}
