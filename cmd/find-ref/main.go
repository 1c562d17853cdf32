// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the find-ref CLI: it locates
// bibliographic references matching a partial citation and renders them
// as APA text, JSON, CSV, or BibTeX.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the find-ref CLI.
var rootCmd = &cobra.Command{
	Use:   "find-ref",
	Short: "Find bibliographic references matching a partial citation",
	Long: `find-ref queries Crossref, Google Books, Semantic Scholar, and Open Library
for works matching a partial citation (author, year, optional keyword),
normalizes the responses into a common record shape, and renders the results
as APA text, JSON, CSV, or BibTeX.

Provider responses are cached on disk for 24 hours so repeated searches skip
the network. The extract subcommand scans a document for in-text citations
and can feed a selected one into the same search.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env carries optional API keys (e.g. SEMANTIC_SCHOLAR_API_KEY).
		// A missing file is fine.
		godotenv.Load()
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./find-ref.yaml or ~/.config/find-ref/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("find-ref")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "find-ref"))
		}
	}

	setConfigDefaults()

	viper.SetEnvPrefix("FIND_REF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
