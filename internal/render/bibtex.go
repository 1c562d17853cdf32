// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/find-ref/pkg/types"
)

// BibTeX renders records as @article/@book entries joined by blank lines.
// Citation keys follow the lastname-year-firstword convention; colliding
// keys are emitted as-is, deduplication is left to the user's reference
// manager.
func BibTeX(records []types.Record) string {
	entries := make([]string, 0, len(records))
	for _, r := range records {
		entries = append(entries, bibtexEntry(r))
	}
	return strings.Join(entries, "\n\n")
}

func bibtexEntry(r types.Record) string {
	fields := make([][2]string, 0, 8)
	add := func(name, value string) {
		if value != "" {
			fields = append(fields, [2]string{name, value})
		}
	}

	add("author", strings.Join(r.Authors, " and "))
	add("title", r.Title)
	add("year", r.Year)
	switch r.Type {
	case types.TypeArticle:
		add("journal", r.Journal)
		add("volume", r.Volume)
		add("number", r.Issue)
		add("pages", r.Pages)
		add("doi", r.DOI)
	case types.TypeBook:
		add("publisher", r.Publisher)
		add("isbn", r.ISBN)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", strings.ToLower(string(r.Type)), bibtexKey(r))
	for i, f := range fields {
		fmt.Fprintf(&b, "  %s = {%s}", f[0], f[1])
		if i < len(fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// bibtexKey builds a citation key from the first author's last name token,
// the year (or "0000"), and the first word of the title (or "untitled"),
// all lowercased.
func bibtexKey(r types.Record) string {
	var last string
	if len(r.Authors) > 0 {
		if tokens := strings.Fields(r.Authors[0]); len(tokens) > 0 {
			last = tokens[len(tokens)-1]
		}
	}

	year := r.Year
	if year == "" {
		year = "0000"
	}

	first := "untitled"
	if tokens := strings.Fields(r.Title); len(tokens) > 0 {
		first = tokens[0]
	}

	return strings.ToLower(last + year + first)
}
