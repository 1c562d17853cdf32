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

// semanticAPIBase is the Semantic Scholar paper search endpoint. Declared
// as a var so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1/paper/search"

const semanticFields = "title,authors,venue,journal,year,externalIds,url"

// SemanticScholarBackend queries the Semantic Scholar Graph API.
type SemanticScholarBackend struct {
	Client  *http.Client
	Limiter *rate.Limiter
}

// Name returns the backend identifier.
func (b *SemanticScholarBackend) Name() string { return "semantic_scholar" }

// Source returns the provenance tag stamped on extracted records.
func (b *SemanticScholarBackend) Source() types.Source { return types.SourceSemanticScholar }

// Fetch queries Semantic Scholar for papers matching the citation, using
// the API's own year filter.
func (b *SemanticScholarBackend) Fetch(ctx context.Context, q Query, cfg types.SearchConfig) ([]json.RawMessage, error) {
	params := url.Values{
		"query":  {strings.TrimSpace(q.Author + " " + q.Keyword)},
		"limit":  {strconv.Itoa(maxResults(cfg))},
		"fields": {semanticFields},
	}
	if q.Year > 0 {
		params.Set("year", strconv.Itoa(q.Year))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, semanticAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	if cfg.SemanticScholarAPIKey != "" {
		req.Header.Set("x-api-key", cfg.SemanticScholarAPIKey)
	}

	resp, err := httputil.Do(ctx, b.Client, b.Limiter, req)
	if err != nil {
		return nil, fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}
	return sr.Data, nil
}

// Extract maps one Semantic Scholar paper into a canonical article record.
func (b *SemanticScholarBackend) Extract(raw json.RawMessage) types.Record {
	var p semanticPaper
	json.Unmarshal(raw, &p) // malformed items yield a sparse record

	rec := types.Record{
		Source: types.SourceSemanticScholar,
		Type:   types.SourceSemanticScholar.RecordType(),
		Title:  p.Title,
	}

	for _, a := range p.Authors {
		rec.Authors = append(rec.Authors, a.Name)
	}
	rec.Journal = p.Venue
	if rec.Journal == "" {
		rec.Journal = p.Journal.Name
	}
	if p.Year > 0 {
		rec.Year = strconv.Itoa(p.Year)
	}
	rec.DOI = p.ExternalIDs.DOI
	rec.URL = p.URL
	return rec
}

// Semantic Scholar API JSON structures.
type semanticResponse struct {
	Total int               `json:"total"`
	Data  []json.RawMessage `json:"data"`
}

type semanticPaper struct {
	Title       string              `json:"title"`
	Venue       string              `json:"venue"`
	Journal     semanticJournal     `json:"journal"`
	Year        int                 `json:"year"`
	URL         string              `json:"url"`
	Authors     []semanticAuthor    `json:"authors"`
	ExternalIDs semanticExternalIDs `json:"externalIds"`
}

type semanticJournal struct {
	Name string `json:"name"`
}

type semanticAuthor struct {
	Name string `json:"name"`
}

type semanticExternalIDs struct {
	DOI string `json:"DOI"`
}
