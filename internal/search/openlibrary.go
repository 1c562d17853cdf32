// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/pdiddy/find-ref/internal/httputil"
	"github.com/pdiddy/find-ref/pkg/types"
)

// openLibraryAPIBase is the Open Library search endpoint. Declared as a
// var so tests can substitute an httptest server.
var openLibraryAPIBase = "https://openlibrary.org/search.json"

// OpenLibraryBackend queries the Open Library search API.
type OpenLibraryBackend struct {
	Client  *http.Client
	Limiter *rate.Limiter
}

// Name returns the backend identifier.
func (b *OpenLibraryBackend) Name() string { return "open_library" }

// Source returns the provenance tag stamped on extracted records.
func (b *OpenLibraryBackend) Source() types.Source { return types.SourceOpenLibrary }

// Fetch queries Open Library and keeps only docs whose first publication
// year matches the requested year. The search API has no year parameter,
// so the filter is applied client-side.
func (b *OpenLibraryBackend) Fetch(ctx context.Context, q Query, cfg types.SearchConfig) ([]json.RawMessage, error) {
	params := url.Values{
		"author": {q.Author},
		"q":      {q.Keyword},
		"limit":  {strconv.Itoa(maxResults(cfg))},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, openLibraryAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.Do(ctx, b.Client, b.Limiter, req)
	if err != nil {
		return nil, fmt.Errorf("Open Library API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Open Library API returned HTTP %d", resp.StatusCode)
	}

	var or openLibraryResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return nil, fmt.Errorf("parsing Open Library response: %w", err)
	}

	if q.Year == 0 {
		return or.Docs, nil
	}

	var filtered []json.RawMessage
	for _, raw := range or.Docs {
		var doc openLibraryDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		if doc.FirstPublishYear == q.Year {
			filtered = append(filtered, raw)
		}
	}
	return filtered, nil
}

// Extract maps one Open Library doc into a canonical book record.
func (b *OpenLibraryBackend) Extract(raw json.RawMessage) types.Record {
	var doc openLibraryDoc
	json.Unmarshal(raw, &doc) // malformed items yield a sparse record

	rec := types.Record{
		Source:  types.SourceOpenLibrary,
		Type:    types.SourceOpenLibrary.RecordType(),
		Authors: doc.AuthorName,
		Title:   doc.Title,
	}

	if len(rec.Authors) == 0 {
		rec.Authors = []string{types.UnknownAuthor}
	}
	if len(doc.Publisher) > 0 {
		rec.Publisher = doc.Publisher[0]
	} else {
		rec.Publisher = types.UnknownPublisher
	}
	if doc.FirstPublishYear > 0 {
		rec.Year = strconv.Itoa(doc.FirstPublishYear)
	}
	if len(doc.ISBN) > 0 {
		rec.ISBN = doc.ISBN[0]
	}
	return rec
}

// Open Library API JSON structures.
type openLibraryResponse struct {
	NumFound int               `json:"numFound"`
	Docs     []json.RawMessage `json:"docs"`
}

type openLibraryDoc struct {
	AuthorName       []string `json:"author_name"`
	Title            string   `json:"title"`
	Publisher        []string `json:"publisher"`
	FirstPublishYear int      `json:"first_publish_year"`
	ISBN             []string `json:"isbn"`
}
