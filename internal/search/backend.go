// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries bibliographic metadata providers for works
// matching a partial citation and normalizes their responses into
// canonical records.
package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/pdiddy/find-ref/pkg/types"
)

// Query holds the partial citation driving a provider search.
type Query struct {
	Author  string
	Year    int
	Keyword string
}

// IsEmpty reports whether the query contains no searchable terms.
func (q Query) IsEmpty() bool {
	return q.Author == "" && q.Year == 0 && q.Keyword == ""
}

// Backend fetches raw items from one provider and adapts them into
// canonical records.
//
// Fetch returns provider-native items as raw JSON so the query cache can
// store them verbatim; items come back already year-filtered and capped at
// the configured maximum. Extract is total: a missing or malformed field
// never fails, it degrades to an empty value or a documented default, so
// malformed items simply yield sparse records.
type Backend interface {
	Name() string
	Source() types.Source
	Fetch(ctx context.Context, q Query, cfg types.SearchConfig) ([]json.RawMessage, error)
	Extract(raw json.RawMessage) types.Record
}

// Backends returns all provider backends in the fixed aggregation order:
// Crossref, Google Books, Semantic Scholar, Open Library.
func Backends(client *http.Client, limiter *rate.Limiter) []Backend {
	return []Backend{
		&CrossrefBackend{Client: client, Limiter: limiter},
		&GoogleBooksBackend{Client: client, Limiter: limiter},
		&SemanticScholarBackend{Client: client, Limiter: limiter},
		&OpenLibraryBackend{Client: client, Limiter: limiter},
	}
}

// Cache provides read-through access to previously fetched raw items.
// Implementations treat entries older than their TTL as absent.
type Cache interface {
	Get(ctx context.Context, key string) ([]json.RawMessage, bool)
	Put(ctx context.Context, key string, items []json.RawMessage) error
}

// CacheKey returns the stable cache key for one provider query: the
// sha-256 hex digest of the (author, year, keyword, source) tuple.
func CacheKey(q Query, src types.Source) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%d\x00%s\x00%s", q.Author, q.Year, q.Keyword, src)
	return hex.EncodeToString(h.Sum(nil))
}

// maxResults returns the per-provider item cap from cfg, defaulting to 5.
func maxResults(cfg types.SearchConfig) int {
	if cfg.MaxResults > 0 {
		return cfg.MaxResults
	}
	return 5
}
