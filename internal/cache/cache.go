// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache stores raw provider responses on disk so repeated queries
// skip the network. Entries expire after a TTL; expired or missing entries
// fall through to a live fetch and are overwritten.
package cache

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/find-ref/pkg/types"
)

const (
	dbFile     = "queries.db"
	defaultTTL = 24 * time.Hour
	lruSize    = 64
)

// Store is the on-disk query cache: one SQLite row per cache key, fronted
// by a small in-process LRU so repeated lookups within one run skip the
// database.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	mem *lru.Cache[string, memEntry]
	now func() time.Time // test hook
}

// memEntry carries the fetch time so the LRU honors the same TTL as the
// database rows.
type memEntry struct {
	items     []json.RawMessage
	fetchedAt time.Time
}

// Open opens or creates the cache database at cfg.Dir/queries.db,
// creating the schema if it does not exist.
func Open(cfg types.CacheConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS queries (
		key        TEXT PRIMARY KEY,
		fetched_at TEXT NOT NULL,
		payload    TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	mem, err := lru.New[string, memEntry](lruSize)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating memory cache: %w", err)
	}

	return &Store{db: db, ttl: ttl, mem: mem, now: time.Now}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached raw items for key. Entries older than the TTL
// are treated as absent.
func (s *Store) Get(ctx context.Context, key string) ([]json.RawMessage, bool) {
	if e, ok := s.mem.Get(key); ok && s.now().Sub(e.fetchedAt) < s.ttl {
		return e.items, true
	}

	var fetchedAt, payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT fetched_at, payload FROM queries WHERE key = ?`, key,
	).Scan(&fetchedAt, &payload)
	if err != nil {
		return nil, false
	}

	t, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil || s.now().Sub(t) >= s.ttl {
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, false
	}

	s.mem.Add(key, memEntry{items: items, fetchedAt: t})
	return items, true
}

// Put stores raw items under key, overwriting any previous entry. The
// payload array is assembled by concatenation, not re-marshaled, so each
// raw item survives the disk round trip byte-for-byte.
func (s *Store) Put(ctx context.Context, key string, items []json.RawMessage) error {
	var payload bytes.Buffer
	payload.WriteString("[")
	for i, item := range items {
		if i > 0 {
			payload.WriteString(",")
		}
		payload.Write(item)
	}
	payload.WriteString("]")

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO queries (key, fetched_at, payload) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET fetched_at=excluded.fetched_at, payload=excluded.payload`,
		key, s.now().UTC().Format(time.RFC3339Nano), payload.String(),
	)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}

	s.mem.Add(key, memEntry{items: items, fetchedAt: s.now()})
	return nil
}

// Purge deletes entries older than the TTL and returns how many rows were
// removed.
func (s *Store) Purge(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.ttl).UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx, `DELETE FROM queries WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purging cache: %w", err)
	}

	s.mem.Purge()
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
