// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/pdiddy/find-ref/pkg/types"
)

func TestFormatAuthor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two tokens", "Jane Doe", "Doe, J."},
		{"three tokens", "Jane Mary Doe", "Doe, J.M."},
		{"single token passes through", "Plato", "Plato"},
		{"empty", "", ""},
		{"initials keep their case", "F. Scott Fitzgerald", "Fitzgerald, F.S."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAuthor(tt.in); got != tt.want {
				t.Errorf("FormatAuthor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatAuthors(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"none", nil, ""},
		{"one", []string{"Jane Doe"}, "Doe, J."},
		{"two", []string{"Jane Doe", "John Smith"}, "Doe, J. & Smith, J."},
		{"three", []string{"Jane Doe", "John Smith", "Ann Lee"}, "Doe, J., Smith, J., & Lee, A."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAuthors(tt.in); got != tt.want {
				t.Errorf("FormatAuthors(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAPAArticleFull(t *testing.T) {
	r := types.Record{
		Source:  types.SourceCrossref,
		Type:    types.TypeArticle,
		Authors: []string{"Jane Doe", "John Smith"},
		Title:   "The Future of AI",
		Year:    "2020",
		Journal: "journal of machine learning research",
		Volume:  "21",
		Issue:   "4",
		Pages:   "117-126",
		DOI:     "10.1234/jmlr.2020",
	}

	want := "Doe, J. & Smith, J. (2020). The future of ai. " +
		"Journal of Machine Learning Research, 21(4), 117–126. " +
		"https://doi.org/10.1234/jmlr.2020"
	if got := APAReference(r); got != want {
		t.Errorf("APAReference =\n  %q\nwant\n  %q", got, want)
	}
}

func TestAPAArticleIssueRequiresVolume(t *testing.T) {
	r := types.Record{
		Type:    types.TypeArticle,
		Authors: []string{"Jane Doe"},
		Title:   "Some result",
		Year:    "2021",
		Journal: "Nature",
		Issue:   "4",
	}

	want := "Doe, J. (2021). Some result. Nature."
	if got := APAReference(r); got != want {
		t.Errorf("APAReference = %q, want %q", got, want)
	}
}

func TestAPAArticlePagesWithoutRange(t *testing.T) {
	r := types.Record{
		Type:    types.TypeArticle,
		Authors: []string{"Jane Doe"},
		Title:   "Letters",
		Year:    "2019",
		Journal: "BMJ",
		Volume:  "3",
		Pages:   "e123",
	}

	want := "Doe, J. (2019). Letters. Bmj, 3, e123."
	if got := APAReference(r); got != want {
		t.Errorf("APAReference = %q, want %q", got, want)
	}
}

func TestAPABook(t *testing.T) {
	r := types.Record{
		Source:    types.SourceGoogleBooks,
		Type:      types.TypeBook,
		Authors:   []string{"F. Scott Fitzgerald"},
		Title:     "the great gatsby",
		Year:      "1925",
		Publisher: "Scribner",
		ISBN:      "9780743273565",
	}

	want := "Fitzgerald, F.S. (1925). The great gatsby. Scribner. ISBN: 9780743273565"
	if got := APAReference(r); got != want {
		t.Errorf("APAReference = %q, want %q", got, want)
	}
}

func TestAPABookWithoutPublisherEndsWithPeriod(t *testing.T) {
	r := types.Record{
		Type:    types.TypeBook,
		Authors: []string{"Unknown"},
		Title:   "the great gatsby",
		Year:    "1925",
	}

	want := "Unknown (1925). The great gatsby."
	if got := APAReference(r); got != want {
		t.Errorf("APAReference = %q, want %q", got, want)
	}
}

func TestAPATitleCasing(t *testing.T) {
	article := types.Record{Type: types.TypeArticle, Title: "the Future of ai"}
	if got := APAReference(article); !strings.Contains(got, "The future of ai") {
		t.Errorf("article title not sentence-cased: %q", got)
	}

	book := types.Record{Type: types.TypeBook, Title: "the great gatsby"}
	if got := APAReference(book); !strings.Contains(got, "The great gatsby") {
		t.Errorf("book title should only force the first letter: %q", got)
	}
}

func TestAPAJournalStopWords(t *testing.T) {
	r := types.Record{
		Type:    types.TypeArticle,
		Authors: []string{"Ann Lee"},
		Title:   "On tides",
		Year:    "1999",
		Journal: "the journal of the royal society",
	}

	if got := APAReference(r); !strings.Contains(got, "The Journal of the Royal Society") {
		t.Errorf("journal not title-cased with stop words: %q", got)
	}
}

func TestAPAUnknownTypeFallback(t *testing.T) {
	r := types.Record{Type: "thesis", Title: "whatever"}
	if got := APAReference(r); got != "[unsupported record type]" {
		t.Errorf("APAReference = %q, want fallback string", got)
	}
}

func TestAPAJoinsRecordsWithBlankLine(t *testing.T) {
	records := []types.Record{
		{Type: types.TypeArticle, Authors: []string{"Jane Doe"}, Title: "One", Year: "2020", Journal: "A"},
		{Type: types.TypeArticle, Authors: []string{"John Smith"}, Title: "Two", Year: "2021", Journal: "B"},
	}

	got := APA(records)
	if !strings.Contains(got, ".\n\nSmith, J.") {
		t.Errorf("records should be separated by a blank line:\n%s", got)
	}
}
