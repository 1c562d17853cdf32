// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/pdiddy/find-ref/internal/httputil"
	"github.com/pdiddy/find-ref/pkg/types"
)

// googleBooksAPIBase is the Google Books volumes endpoint. Declared as a
// var so tests can substitute an httptest server.
var googleBooksAPIBase = "https://www.googleapis.com/books/v1/volumes"

// GoogleBooksBackend queries the Google Books volumes API.
type GoogleBooksBackend struct {
	Client  *http.Client
	Limiter *rate.Limiter
}

// Name returns the backend identifier.
func (b *GoogleBooksBackend) Name() string { return "google_books" }

// Source returns the provenance tag stamped on extracted records.
func (b *GoogleBooksBackend) Source() types.Source { return types.SourceGoogleBooks }

// Fetch queries Google Books and keeps only volumes whose published date
// mentions the requested year. The API has no year filter of its own, so
// the filter is applied client-side.
func (b *GoogleBooksBackend) Fetch(ctx context.Context, q Query, cfg types.SearchConfig) ([]json.RawMessage, error) {
	params := url.Values{
		"q":          {fmt.Sprintf("inauthor:%s subject:%s", q.Author, q.Keyword)},
		"maxResults": {strconv.Itoa(maxResults(cfg))},
		"orderBy":    {"relevance"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleBooksAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.Do(ctx, b.Client, b.Limiter, req)
	if err != nil {
		return nil, fmt.Errorf("Google Books API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google Books API returned HTTP %d", resp.StatusCode)
	}

	var gr googleBooksResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("parsing Google Books response: %w", err)
	}

	if q.Year == 0 {
		return gr.Items, nil
	}

	year := strconv.Itoa(q.Year)
	var filtered []json.RawMessage
	for _, raw := range gr.Items {
		var item googleBooksItem
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		if strings.Contains(item.VolumeInfo.PublishedDate, year) {
			filtered = append(filtered, raw)
		}
	}
	return filtered, nil
}

// Extract maps one Google Books volume into a canonical book record.
func (b *GoogleBooksBackend) Extract(raw json.RawMessage) types.Record {
	var item googleBooksItem
	json.Unmarshal(raw, &item) // malformed items yield a sparse record
	info := item.VolumeInfo

	rec := types.Record{
		Source:  types.SourceGoogleBooks,
		Type:    types.SourceGoogleBooks.RecordType(),
		Authors: info.Authors,
		Title:   info.Title,
	}

	if len(rec.Authors) == 0 {
		rec.Authors = []string{types.UnknownAuthor}
	}
	rec.Publisher = info.Publisher
	if rec.Publisher == "" {
		rec.Publisher = types.UnknownPublisher
	}
	if len(info.PublishedDate) >= 4 {
		rec.Year = info.PublishedDate[:4]
	} else {
		rec.Year = info.PublishedDate
	}
	for _, id := range info.IndustryIdentifiers {
		if id.Type == "ISBN_13" || id.Type == "ISBN_10" {
			rec.ISBN = id.Identifier
			break
		}
	}
	return rec
}

// Google Books API JSON structures.
type googleBooksResponse struct {
	Items []json.RawMessage `json:"items"`
}

type googleBooksItem struct {
	VolumeInfo googleVolumeInfo `json:"volumeInfo"`
}

type googleVolumeInfo struct {
	Authors             []string           `json:"authors"`
	Title               string             `json:"title"`
	Publisher           string             `json:"publisher"`
	PublishedDate       string             `json:"publishedDate"`
	IndustryIdentifiers []googleIdentifier `json:"industryIdentifiers"`
}

type googleIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}
