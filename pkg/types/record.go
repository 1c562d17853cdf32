// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared across find-ref stages.
package types

// Source identifies the metadata provider a record came from.
type Source string

const (
	SourceCrossref        Source = "crossref"
	SourceGoogleBooks     Source = "google_books"
	SourceSemanticScholar Source = "semantic_scholar"
	SourceOpenLibrary     Source = "open_library"
)

// RecordType distinguishes journal articles from books. It determines
// which optional Record fields are meaningful and which renderer branch
// applies.
type RecordType string

const (
	TypeArticle RecordType = "article"
	TypeBook    RecordType = "book"
)

// RecordType returns the record type implied by the source. Article
// providers and book providers are disjoint, so the type is fixed at
// extraction time and never changes afterwards.
func (s Source) RecordType() RecordType {
	switch s {
	case SourceGoogleBooks, SourceOpenLibrary:
		return TypeBook
	default:
		return TypeArticle
	}
}

// Placeholder values produced by adapters when a provider omits a field.
const (
	UnknownAuthor    = "Unknown"
	UnknownPublisher = "Unknown publisher"
)

// Record is the canonical bibliographic record: the sole interchange type
// between provider adapters and output renderers. Adapters produce it from
// one raw provider item; renderers only read it.
//
// Year is kept as a normalized string scalar (empty means absent) because
// providers encode it as a date prefix, an integer, or a date-parts array,
// and renderers emit it verbatim.
type Record struct {
	Source  Source     `json:"source" yaml:"source"`
	Type    RecordType `json:"type" yaml:"type"`
	Authors []string   `json:"authors,omitempty" yaml:"authors,omitempty"`
	Title   string     `json:"title,omitempty" yaml:"title,omitempty"`
	Year    string     `json:"year,omitempty" yaml:"year,omitempty"`

	// Article-only fields.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`
	Volume  string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue   string `json:"issue,omitempty" yaml:"issue,omitempty"`
	Pages   string `json:"pages,omitempty" yaml:"pages,omitempty"`
	DOI     string `json:"doi,omitempty" yaml:"doi,omitempty"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`

	// Book-only fields.
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	ISBN      string `json:"isbn,omitempty" yaml:"isbn,omitempty"`
}
