// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "find-ref/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the provider search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults caps the number of raw items requested per provider (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// RequestsPerSecond throttles outbound provider requests across all
	// backends (default 2).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`
}

// CacheConfig holds settings for the on-disk query cache.
type CacheConfig struct {
	// Dir is the directory holding the cache database.
	Dir string `json:"dir" yaml:"dir"`

	// TTL is how long a cached provider response stays valid (default 24h).
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// ExtractConfig holds settings for document citation extraction.
type ExtractConfig struct {
	// MaxPDFPages limits how many PDF pages are scanned for citations
	// (0 means all pages).
	MaxPDFPages int `json:"max_pdf_pages" yaml:"max_pdf_pages"`
}

// Config groups all stage configurations.
type Config struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Cache   CacheConfig   `json:"cache" yaml:"cache"`
	Extract ExtractConfig `json:"extract" yaml:"extract"`
}
