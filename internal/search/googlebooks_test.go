// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/find-ref/pkg/types"
)

func TestGoogleBooksExtractFullItem(t *testing.T) {
	raw := json.RawMessage(`{
		"volumeInfo": {
			"authors": ["F. Scott Fitzgerald"],
			"title": "The Great Gatsby",
			"publisher": "Scribner",
			"publishedDate": "1925-04-10",
			"industryIdentifiers": [
				{"type": "OTHER", "identifier": "OCLC:123"},
				{"type": "ISBN_13", "identifier": "9780743273565"},
				{"type": "ISBN_10", "identifier": "0743273567"}
			]
		}
	}`)

	b := &GoogleBooksBackend{}
	rec := b.Extract(raw)

	want := types.Record{
		Source:    types.SourceGoogleBooks,
		Type:      types.TypeBook,
		Authors:   []string{"F. Scott Fitzgerald"},
		Title:     "The Great Gatsby",
		Year:      "1925",
		Publisher: "Scribner",
		ISBN:      "9780743273565",
	}
	assert.Equal(t, want, rec)
}

func TestGoogleBooksExtractDefaults(t *testing.T) {
	b := &GoogleBooksBackend{}
	rec := b.Extract(json.RawMessage(`{"volumeInfo": {"title": "Anon"}}`))

	assert.Equal(t, []string{types.UnknownAuthor}, rec.Authors)
	assert.Equal(t, types.UnknownPublisher, rec.Publisher)
	assert.Empty(t, rec.Year)
	assert.Empty(t, rec.ISBN)
}

func TestGoogleBooksExtractShortPublishedDate(t *testing.T) {
	b := &GoogleBooksBackend{}
	rec := b.Extract(json.RawMessage(`{"volumeInfo": {"publishedDate": "192"}}`))
	assert.Equal(t, "192", rec.Year)
}

func TestGoogleBooksFetchFiltersByYear(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, googleBooksAPIBase,
		httpmock.NewStringResponder(http.StatusOK, `{
			"items": [
				{"volumeInfo": {"title": "Match", "publishedDate": "1925-04-10"}},
				{"volumeInfo": {"title": "Miss", "publishedDate": "1931"}}
			]
		}`))

	client := &http.Client{Transport: transport}
	b := &GoogleBooksBackend{Client: client}
	items, err := b.Fetch(context.Background(), Query{Author: "Fitzgerald", Year: 1925}, types.SearchConfig{})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Match", b.Extract(items[0]).Title)
}

func TestGoogleBooksFetchNoYearKeepsAll(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, googleBooksAPIBase,
		httpmock.NewStringResponder(http.StatusOK, `{
			"items": [
				{"volumeInfo": {"title": "One", "publishedDate": "1925"}},
				{"volumeInfo": {"title": "Two", "publishedDate": "1931"}}
			]
		}`))

	b := &GoogleBooksBackend{Client: &http.Client{Transport: transport}}
	items, err := b.Fetch(context.Background(), Query{Author: "Fitzgerald"}, types.SearchConfig{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestGoogleBooksFetchServerError(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, googleBooksAPIBase,
		httpmock.NewStringResponder(http.StatusBadGateway, "bad gateway"))

	b := &GoogleBooksBackend{Client: &http.Client{Transport: transport}}
	_, err := b.Fetch(context.Background(), Query{Author: "Fitzgerald"}, types.SearchConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}
