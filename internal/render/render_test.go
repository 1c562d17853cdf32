// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/pdiddy/find-ref/pkg/types"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"apa", FormatAPA, false},
		{"APA", FormatAPA, false},
		{"Json", FormatJSON, false},
		{"csv", FormatCSV, false},
		{"bibtex", FormatBibTeX, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderDispatch(t *testing.T) {
	records := []types.Record{{
		Source:  types.SourceCrossref,
		Type:    types.TypeArticle,
		Authors: []string{"Jane Doe"},
		Title:   "Sample",
		Year:    "2020",
		Journal: "Nature",
		Pages:   "10-20",
	}}

	tests := []struct {
		format Format
		marker string
	}{
		{FormatAPA, "Doe, J. (2020)"},
		{FormatJSON, `"source": "crossref"`},
		{FormatCSV, "type,authors,title"},
		{FormatBibTeX, "@article{doe2020sample,"},
	}
	for _, tt := range tests {
		got, err := Render(tt.format, records)
		if err != nil {
			t.Errorf("Render(%q): %v", tt.format, err)
			continue
		}
		if !strings.Contains(got, tt.marker) {
			t.Errorf("Render(%q) missing %q:\n%s", tt.format, tt.marker, got)
		}
	}

	if _, err := Render(Format("xml"), records); err == nil {
		t.Error("Render with unknown format should fail")
	}
}

// The en dash substitution in page ranges is an APA display rule only.
// Structured formats must carry the stored value unchanged.
func TestPageRangeEnDashScopedToAPA(t *testing.T) {
	records := []types.Record{{
		Source:  types.SourceCrossref,
		Type:    types.TypeArticle,
		Authors: []string{"Jane Doe"},
		Title:   "Sample",
		Year:    "2020",
		Journal: "Nature",
		Pages:   "117-126",
	}}

	apa, err := Render(FormatAPA, records)
	if err != nil {
		t.Fatalf("Render apa: %v", err)
	}
	if !strings.Contains(apa, "117–126") {
		t.Errorf("APA should use an en dash: %q", apa)
	}

	for _, f := range []Format{FormatJSON, FormatCSV, FormatBibTeX} {
		got, err := Render(f, records)
		if err != nil {
			t.Fatalf("Render %s: %v", f, err)
		}
		if !strings.Contains(got, "117-126") {
			t.Errorf("%s should keep the hyphen verbatim:\n%s", f, got)
		}
		if strings.Contains(got, "–") {
			t.Errorf("%s should not contain an en dash:\n%s", f, got)
		}
	}
}
