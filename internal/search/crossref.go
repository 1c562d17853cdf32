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

// crossrefAPIBase is the Crossref works endpoint. Declared as a var so
// tests can substitute an httptest server.
var crossrefAPIBase = "https://api.crossref.org/works"

// CrossrefBackend queries the Crossref REST API for journal articles.
type CrossrefBackend struct {
	Client  *http.Client
	Limiter *rate.Limiter
}

// Name returns the backend identifier.
func (b *CrossrefBackend) Name() string { return "crossref" }

// Source returns the provenance tag stamped on extracted records.
func (b *CrossrefBackend) Source() types.Source { return types.SourceCrossref }

// Fetch queries Crossref for works matching the citation. The publication
// date filter spans year-1 through year+1 so off-by-one catalog dates
// still match.
func (b *CrossrefBackend) Fetch(ctx context.Context, q Query, cfg types.SearchConfig) ([]json.RawMessage, error) {
	params := url.Values{
		"query.author":        {q.Author},
		"query.bibliographic": {q.Keyword},
		"rows":                {strconv.Itoa(maxResults(cfg))},
		"sort":                {"relevance"},
	}
	if q.Year > 0 {
		params.Set("filter", fmt.Sprintf("from-pub-date:%d,until-pub-date:%d", q.Year-1, q.Year+1))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, crossrefAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.Do(ctx, b.Client, b.Limiter, req)
	if err != nil {
		return nil, fmt.Errorf("Crossref API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Crossref API returned HTTP %d", resp.StatusCode)
	}

	var cr crossrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("parsing Crossref response: %w", err)
	}
	return cr.Message.Items, nil
}

// Extract maps one Crossref work item into a canonical article record.
func (b *CrossrefBackend) Extract(raw json.RawMessage) types.Record {
	var w crossrefWork
	json.Unmarshal(raw, &w) // malformed items yield a sparse record

	rec := types.Record{
		Source: types.SourceCrossref,
		Type:   types.SourceCrossref.RecordType(),
	}

	for _, a := range w.Author {
		rec.Authors = append(rec.Authors, strings.TrimSpace(a.Given+" "+a.Family))
	}
	if len(w.Title) > 0 {
		rec.Title = w.Title[0]
	}
	if len(w.ContainerTitle) > 0 {
		rec.Journal = w.ContainerTitle[0]
	}
	if len(w.Issued.DateParts) > 0 && len(w.Issued.DateParts[0]) > 0 && w.Issued.DateParts[0][0] > 0 {
		rec.Year = strconv.Itoa(w.Issued.DateParts[0][0])
	}
	rec.Volume = w.Volume
	rec.Issue = w.Issue
	rec.Pages = w.Page
	rec.DOI = w.DOI
	return rec
}

// Crossref API JSON structures.
type crossrefResponse struct {
	Message crossrefMessage `json:"message"`
}

type crossrefMessage struct {
	Items []json.RawMessage `json:"items"`
}

type crossrefWork struct {
	Author         []crossrefAuthor `json:"author"`
	Title          []string         `json:"title"`
	ContainerTitle []string         `json:"container-title"`
	Issued         crossrefDate     `json:"issued"`
	Volume         string           `json:"volume"`
	Issue          string           `json:"issue"`
	Page           string           `json:"page"`
	DOI            string           `json:"DOI"`
}

type crossrefAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type crossrefDate struct {
	DateParts [][]int `json:"date-parts"`
}
