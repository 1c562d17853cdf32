// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/find-ref/internal/extract"
	"github.com/pdiddy/find-ref/internal/render"
	"github.com/pdiddy/find-ref/internal/search"
)

var extractCmd = &cobra.Command{
	Use:   "extract FILE",
	Short: "Extract candidate in-text citations from a document",
	Long: `Extract scans a plain text, PDF, or DOCX document for in-text citations
like "Smith (2020)" or "(Smith, 2020)" and lists the candidates. Pass
--pick N to feed the Nth candidate into the reference search.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pick, _ := cmd.Flags().GetInt("pick")
		keyword, _ := cmd.Flags().GetString("keyword")
		formatName, _ := cmd.Flags().GetString("format")
		noCache, _ := cmd.Flags().GetBool("no-cache")

		text, err := extract.ReadDocument(args[0], extractConfig())
		if err != nil {
			return err
		}

		citations := extract.Citations(text)
		if len(citations) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No citations found in document.")
			return nil
		}

		if pick <= 0 {
			out := cmd.OutOrStdout()
			for i, c := range citations {
				fmt.Fprintf(out, "%3d. %s\n", i+1, c.MatchedText)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "\nRe-run with --pick N to search for one of these citations.")
			return nil
		}

		if pick > len(citations) {
			return fmt.Errorf("--pick %d out of range: document has %d citations", pick, len(citations))
		}

		format, err := render.ParseFormat(formatName)
		if err != nil {
			return err
		}

		c := citations[pick-1]
		fmt.Fprintf(cmd.ErrOrStderr(), "Searching for %q\n", c.MatchedText)
		q := search.Query{Author: c.Author, Year: c.Year, Keyword: keyword}
		return executeSearch(cmd, q, format, noCache, "", "")
	},
}

func init() {
	extractCmd.Flags().Int("pick", 0, "search for the Nth extracted citation")
	extractCmd.Flags().String("keyword", "", "keyword to narrow the search when using --pick")
	extractCmd.Flags().String("format", "apa", "output format: apa, json, csv, or bibtex")
	extractCmd.Flags().Bool("no-cache", false, "bypass the on-disk query cache")

	rootCmd.AddCommand(extractCmd)
}
