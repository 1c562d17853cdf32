// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/pdiddy/find-ref/pkg/types"
)

const csvHeader = "type,authors,title,year,journal,volume,issue,pages,doi,publisher,isbn,source"

func TestCSVEmptyListIsHeaderOnly(t *testing.T) {
	got, err := CSV(nil)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if got != csvHeader+"\n" {
		t.Errorf("CSV(nil) = %q, want header row only", got)
	}
}

func TestCSVArticleRow(t *testing.T) {
	r := types.Record{
		Source:  types.SourceCrossref,
		Type:    types.TypeArticle,
		Authors: []string{"Jane Doe", "John Smith"},
		Title:   "Deep Learning Basics",
		Year:    "2020",
		Journal: "JMLR",
		Volume:  "21",
		Issue:   "4",
		Pages:   "117-126",
		DOI:     "10.1234/x",
		URL:     "https://example.org/paper",
	}

	got, err := CSV([]types.Record{r})
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), got)
	}
	if lines[0] != csvHeader {
		t.Errorf("header = %q", lines[0])
	}

	want := `article,"Jane Doe, John Smith",Deep Learning Basics,2020,JMLR,21,4,117-126,10.1234/x,,,crossref`
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}

	// The URL field has no column; it must not leak into the output.
	if strings.Contains(got, "example.org") {
		t.Errorf("url should be dropped from CSV output:\n%s", got)
	}
}

func TestCSVBookRowFillsEmptyColumns(t *testing.T) {
	r := types.Record{
		Source:    types.SourceOpenLibrary,
		Type:      types.TypeBook,
		Authors:   []string{"Unknown"},
		Title:     "The Great Gatsby",
		Year:      "1925",
		Publisher: "Scribner",
		ISBN:      "9780743273565",
	}

	got, err := CSV([]types.Record{r})
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	want := "book,Unknown,The Great Gatsby,1925,,,,,,Scribner,9780743273565,open_library"
	if !strings.Contains(got, want) {
		t.Errorf("CSV = %q, want row %q", got, want)
	}
}
