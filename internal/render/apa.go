// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"unicode"

	"github.com/pdiddy/find-ref/pkg/types"
)

// journalStopWords are never capitalized inside a journal name. The first
// word is capitalized regardless.
var journalStopWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "but": true, "or": true, "for": true, "nor": true,
	"on": true, "at": true, "to": true, "from": true, "by": true,
	"in": true, "of": true,
}

// APA renders each record as an APA-style reference, joined by blank lines.
func APA(records []types.Record) string {
	refs := make([]string, 0, len(records))
	for _, r := range records {
		refs = append(refs, APAReference(r))
	}
	return strings.Join(refs, "\n\n")
}

// APAReference formats a single record. Unknown record types produce a
// literal fallback string rather than an error.
func APAReference(r types.Record) string {
	switch r.Type {
	case types.TypeArticle:
		return apaArticle(r)
	case types.TypeBook:
		return apaBook(r)
	}
	return "[unsupported record type]"
}

func apaArticle(r types.Record) string {
	var b strings.Builder
	b.WriteString(FormatAuthors(r.Authors))
	b.WriteString(" (")
	b.WriteString(r.Year)
	b.WriteString("). ")
	b.WriteString(sentenceCase(r.Title))
	b.WriteString(". ")
	b.WriteString(titleCaseJournal(r.Journal))

	if r.Volume != "" {
		b.WriteString(", ")
		b.WriteString(r.Volume)
		if r.Issue != "" {
			b.WriteString("(")
			b.WriteString(r.Issue)
			b.WriteString(")")
		}
	}
	if r.Pages != "" {
		b.WriteString(", ")
		b.WriteString(enDashRange(r.Pages))
	}

	s := b.String()
	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "?") && !strings.HasSuffix(s, "!") {
		s += "."
	}
	if r.DOI != "" {
		s += " https://doi.org/" + r.DOI
	}
	return s
}

func apaBook(r types.Record) string {
	s := FormatAuthors(r.Authors) + " (" + r.Year + "). " + upperFirst(r.Title)
	if r.Publisher != "" {
		s += ". " + r.Publisher
	}
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	if r.ISBN != "" {
		s += " ISBN: " + r.ISBN
	}
	return s
}

// FormatAuthor inverts one display name into APA "Last, F.M." form: the
// last whitespace token becomes the surname, every earlier token
// contributes its first letter followed by a period, with no space
// between consecutive initials. Single-token names pass through unchanged.
func FormatAuthor(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return name
	}

	var b strings.Builder
	b.WriteString(tokens[len(tokens)-1])
	b.WriteString(", ")
	for _, t := range tokens[:len(tokens)-1] {
		b.WriteString(string([]rune(t)[0]))
		b.WriteString(".")
	}
	return b.String()
}

// FormatAuthors joins formatted author names: a single pair is joined with
// " & ", longer lists use ", " separators with ", & " before the final
// author.
func FormatAuthors(authors []string) string {
	formatted := make([]string, len(authors))
	for i, a := range authors {
		formatted[i] = FormatAuthor(a)
	}

	switch len(formatted) {
	case 0:
		return ""
	case 1:
		return formatted[0]
	case 2:
		return formatted[0] + " & " + formatted[1]
	}
	return strings.Join(formatted[:len(formatted)-1], ", ") + ", & " + formatted[len(formatted)-1]
}

// sentenceCase uppercases the first character and lowercases the rest
// (article titles).
func sentenceCase(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

// upperFirst uppercases the first character and leaves the rest untouched
// (book titles).
func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(unicode.ToUpper(runes[0])) + string(runes[1:])
}

// titleCaseJournal capitalizes every word of a journal name except
// interior stop words.
func titleCaseJournal(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		lower := strings.ToLower(w)
		if i > 0 && journalStopWords[lower] {
			words[i] = lower
			continue
		}
		runes := []rune(lower)
		words[i] = string(unicode.ToUpper(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}

// enDashRange replaces the hyphen of a simple "123-145" range with an en
// dash. Multi-hyphen or hyphenless values pass through unchanged.
func enDashRange(pages string) string {
	if strings.Count(pages, "-") == 1 {
		return strings.Replace(pages, "-", "–", 1)
	}
	return pages
}
