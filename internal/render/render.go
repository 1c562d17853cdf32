// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns canonical records into serialized output. Every
// renderer is a pure function over the record list: same input, same
// bytes, no side effects.
package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/find-ref/pkg/types"
)

// Format selects an output renderer.
type Format string

const (
	FormatAPA    Format = "apa"
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatBibTeX Format = "bibtex"
)

// ParseFormat validates a format selector from the CLI.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAPA, FormatJSON, FormatCSV, FormatBibTeX:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want apa, json, csv, or bibtex)", s)
}

// Render produces the serialized form of records in the given format.
func Render(f Format, records []types.Record) (string, error) {
	switch f {
	case FormatAPA:
		return APA(records), nil
	case FormatJSON:
		return JSON(records)
	case FormatCSV:
		return CSV(records)
	case FormatBibTeX:
		return BibTeX(records), nil
	}
	return "", fmt.Errorf("unsupported output format %q", f)
}
