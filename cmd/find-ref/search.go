// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/pdiddy/find-ref/internal/cache"
	"github.com/pdiddy/find-ref/internal/render"
	"github.com/pdiddy/find-ref/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search metadata providers for references matching a partial citation",
	Long: `Search queries Crossref, Google Books, Semantic Scholar, and Open Library
for works matching a partial citation and renders the aggregated records in
the requested output format. Results keep the fixed provider order; no
deduplication is performed across providers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		citation, _ := cmd.Flags().GetString("citation")
		keyword, _ := cmd.Flags().GetString("keyword")
		formatName, _ := cmd.Flags().GetString("format")
		noCache, _ := cmd.Flags().GetBool("no-cache")
		savePath, _ := cmd.Flags().GetString("save")
		outPath, _ := cmd.Flags().GetString("out")

		author, year, err := ParseCitation(citation)
		if err != nil {
			return err
		}

		format, err := render.ParseFormat(formatName)
		if err != nil {
			return err
		}

		q := search.Query{Author: author, Year: year, Keyword: keyword}
		return executeSearch(cmd, q, format, noCache, savePath, outPath)
	},
}

func init() {
	searchCmd.Flags().String("citation", "", "partial citation: 'Author (Year)', '(Author, Year)', or 'Author, Year'")
	searchCmd.Flags().String("keyword", "", "keyword to narrow the search")
	searchCmd.Flags().String("format", "apa", "output format: apa, json, csv, or bibtex")
	searchCmd.Flags().Bool("no-cache", false, "bypass the on-disk query cache")
	searchCmd.Flags().String("save", "", "save the query and records to a YAML file")
	searchCmd.Flags().String("out", "", "write rendered output to a file instead of stdout")
	searchCmd.MarkFlagRequired("citation")

	rootCmd.AddCommand(searchCmd)
}

// executeSearch runs the provider search for q and renders the aggregated
// records. Shared by the search and extract commands.
func executeSearch(cmd *cobra.Command, q search.Query, format render.Format, noCache bool, savePath, outPath string) error {
	cfg := searchConfig()
	client := &http.Client{Timeout: cfg.Timeout}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	backends := search.Backends(client, limiter)
	stderr := cmd.ErrOrStderr()

	var qc search.Cache
	if !noCache {
		store, err := cache.Open(cacheConfig())
		if err != nil {
			fmt.Fprintf(stderr, "warning: query cache unavailable: %v\n", err)
		} else {
			defer store.Close()
			qc = store
		}
	}

	out := search.Run(cmd.Context(), q, backends, qc, cfg, stderr)

	if savePath != "" {
		if err := search.WriteQueryFile(savePath, q, string(format), out); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Saved query to %s\n", savePath)
	}

	if len(out.Records) == 0 {
		fmt.Fprintln(stderr, "No references found matching your query.")
		fmt.Fprintln(stderr, "Try adjusting your search terms or expanding the year range.")
		return nil
	}

	fmt.Fprintf(stderr, "Found %d references.\n", len(out.Records))

	text, err := render.Render(format, out.Records)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Fprintf(stderr, "Wrote results to %s\n", outPath)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
