// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/find-ref/pkg/types"
)

// QueryFile is the on-disk representation of a search and its records.
// A search can be saved to a file and reloaded later without re-querying
// the providers.
type QueryFile struct {
	Query   QueryParams    `yaml:"query"`
	Format  string         `yaml:"format"`
	Records []types.Record `yaml:"records"`
	Summary QuerySummary   `yaml:"summary"`
}

// QueryParams stores the query parameters in a serializable form.
type QueryParams struct {
	Author  string `yaml:"author,omitempty"`
	Year    int    `yaml:"year,omitempty"`
	Keyword string `yaml:"keyword,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total         int       `yaml:"total"`
	BackendErrors []string  `yaml:"backend_errors,omitempty"`
	Timestamp     time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves query parameters and aggregated records to a YAML file.
func WriteQueryFile(path string, q Query, format string, out Output) error {
	qf := QueryFile{
		Query: QueryParams{
			Author:  q.Author,
			Year:    q.Year,
			Keyword: q.Keyword,
		},
		Format:  format,
		Records: out.Records,
		Summary: QuerySummary{
			Total:         len(out.Records),
			BackendErrors: out.BackendErrors,
			Timestamp:     time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToQuery converts stored QueryParams back into a Query.
func (p QueryParams) ToQuery() Query {
	return Query{Author: p.Author, Year: p.Year, Keyword: p.Keyword}
}
