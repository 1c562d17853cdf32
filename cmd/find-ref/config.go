// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/find-ref/pkg/types"
)

// setConfigDefaults registers defaults for every config key so viper reads
// are never zero-valued by accident.
func setConfigDefaults() {
	viper.SetDefault("search.timeout", 15*time.Second)
	viper.SetDefault("search.user_agent", "find-ref/"+version)
	viper.SetDefault("search.max_results", 5)
	viper.SetDefault("search.requests_per_second", 2.0)
	viper.SetDefault("cache.dir", defaultCacheDir())
	viper.SetDefault("cache.ttl", 24*time.Hour)
	viper.SetDefault("extract.max_pdf_pages", 0)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// defaultCacheDir returns the user cache directory for find-ref, falling
// back to a dotted directory in the working directory.
func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".find-ref-cache"
	}
	return filepath.Join(base, "find-ref")
}

func searchConfig() types.SearchConfig {
	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("search.timeout"),
			UserAgent: viper.GetString("search.user_agent"),
		},
		MaxResults:            viper.GetInt("search.max_results"),
		RequestsPerSecond:     viper.GetFloat64("search.requests_per_second"),
		SemanticScholarAPIKey: viper.GetString("search.semantic_scholar_api_key"),
	}
	if cfg.SemanticScholarAPIKey == "" {
		cfg.SemanticScholarAPIKey = os.Getenv("SEMANTIC_SCHOLAR_API_KEY")
	}
	return cfg
}

func cacheConfig() types.CacheConfig {
	return types.CacheConfig{
		Dir: viper.GetString("cache.dir"),
		TTL: viper.GetDuration("cache.ttl"),
	}
}

func extractConfig() types.ExtractConfig {
	return types.ExtractConfig{
		MaxPDFPages: viper.GetInt("extract.max_pdf_pages"),
	}
}
