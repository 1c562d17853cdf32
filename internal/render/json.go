// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"

	"github.com/pdiddy/find-ref/pkg/types"
)

// JSON renders records as a 2-space-indented JSON array. HTML escaping is
// disabled so non-ASCII and URL text pass through literally; sparse
// records serialize as sparse objects.
func JSON(records []types.Record) (string, error) {
	if records == nil {
		records = []types.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return "", err
	}
	return buf.String(), nil
}
