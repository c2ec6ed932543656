package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	queryFlag  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "hackerstories",
	Short: "Search Hacker News stories from the terminal",
	Long: `hackerstories searches Hacker News through the Algolia search API.

The last query you typed is remembered and searched again on the next start.
Press / to edit the query, enter to search, d to drop a story from the list
and ? for the full list of keys.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run one search and print the results",
	Long: `Runs a single search without the terminal UI and prints the stories.
The query is remembered just as if it had been typed in the UI. Without an
argument the remembered query is searched.`,
	RunE: runSearch,
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the remembered query",
	Args:  cobra.NoArgs,
	RunE:  runLast,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: <user config dir>/hackerstories/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&queryFlag, "query", "q", "", "Start with this query instead of the remembered one")

	rootCmd.AddCommand(searchCmd, lastCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
