// Package main provides the tailor CLI: fit analysis, document tailoring, job ranking, submission and the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Fit scoring and document tailoring engine",
	Long: `tailor scores how well a candidate profile fits a job posting and generates a tailored resume,
cover letter, statement of purpose and interview guide.

Configuration can be loaded from a JSON file using --config. Environment variables override the file,
and command-line flags override both.`,
	SilenceUsage: true,
}

var (
	configPath string
	verbose    bool
	debug      bool
	jsonLogs   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed information")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
