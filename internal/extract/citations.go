// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract scans documents for in-text citations that can seed a
// reference search.
package extract

import (
	"regexp"
	"strconv"
)

// Citation is one candidate in-text citation found in a document.
type Citation struct {
	// MatchedText is the full text the pattern matched, e.g. "Smith (2020)".
	MatchedText string

	// Author is the lead author name captured from the match.
	Author string

	// Year is the captured 4-digit year.
	Year int
}

// citePatterns is the ordered matcher cascade. Each pattern independently
// captures a lead author and a 4-digit year; overlapping matches from
// different patterns are all reported, the caller picks one.
var citePatterns = []*regexp.Regexp{
	// Smith et al. (2020)
	regexp.MustCompile(`\b([A-Z][A-Za-z'-]+)\s+et\s+al\.?\s*\((\d{4})\)`),
	// Smith and Jones (2019)
	regexp.MustCompile(`\b([A-Z][A-Za-z'-]+)\s+(?:and|&)\s+[A-Z][A-Za-z'-]+\s*\((\d{4})\)`),
	// Smith (2020)
	regexp.MustCompile(`\b([A-Z][A-Za-z'-]+)\s*\((\d{4})\)`),
	// (Smith, 2020) or (Smith et al., 2020)
	regexp.MustCompile(`\(([A-Z][A-Za-z'-]+)(?:\s+et\s+al\.?)?,\s*(\d{4})\)`),
}

// Citations runs the pattern cascade over text and returns every match in
// cascade order.
func Citations(text string) []Citation {
	var found []Citation
	for _, re := range citePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			year, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			found = append(found, Citation{
				MatchedText: m[0],
				Author:      m[1],
				Year:        year,
			})
		}
	}
	return found
}
