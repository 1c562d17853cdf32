// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/pdiddy/find-ref/pkg/types"
)

// csvColumns is the fixed CSV column order. Record fields outside this set
// (the article URL) are dropped; columns a record does not carry render as
// empty cells.
var csvColumns = []string{
	"type", "authors", "title", "year", "journal", "volume",
	"issue", "pages", "doi", "publisher", "isbn", "source",
}

// CSV renders records as comma-separated rows under a fixed header. The
// header is emitted even for an empty record list.
func CSV(records []types.Record) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvColumns); err != nil {
		return "", err
	}
	for _, r := range records {
		row := []string{
			string(r.Type),
			strings.Join(r.Authors, ", "),
			r.Title,
			r.Year,
			r.Journal,
			r.Volume,
			r.Issue,
			r.Pages,
			r.DOI,
			r.Publisher,
			r.ISBN,
			string(r.Source),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}
