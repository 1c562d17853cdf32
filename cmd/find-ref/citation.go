// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCitation splits a partial citation string into author and year.
// Three forms are accepted: "Author (Year)", "(Author, Year)", and
// "Author, Year".
func ParseCitation(citation string) (string, int, error) {
	citation = strings.TrimSpace(citation)

	switch {
	case strings.HasPrefix(citation, "(") && strings.HasSuffix(citation, ")"):
		// "(Author, Year)"
		content := strings.Trim(citation, "()")
		if author, year, ok := splitAuthorYear(content, ","); ok {
			return author, year, nil
		}
	case strings.Contains(citation, "(") && strings.HasSuffix(citation, ")"):
		// "Author (Year)"
		author, rest, _ := strings.Cut(citation, "(")
		year, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(rest, ")")))
		if err == nil {
			return strings.TrimSpace(author), year, nil
		}
	case strings.Contains(citation, ","):
		// "Author, Year"
		if author, year, ok := splitAuthorYear(citation, ","); ok {
			return author, year, nil
		}
	}

	return "", 0, fmt.Errorf("invalid citation %q: use 'Author (Year)', '(Author, Year)', or 'Author, Year'", citation)
}

func splitAuthorYear(s, sep string) (string, int, bool) {
	author, rest, found := strings.Cut(s, sep)
	if !found {
		return "", 0, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return "", 0, false
	}
	return strings.TrimSpace(author), year, true
}
