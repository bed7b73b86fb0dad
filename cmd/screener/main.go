// Package main provides the screener CLI: text analysis, record pools, candidate
// screening and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dbURL      string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Candidate resume screener",
	Long: "screener normalizes resume and job description text into keyword and skill sets, " +
		"scores candidates against a stored pool of reference employees and ranks record pools.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database URL (postgres://..., sqlite://path or path.db); overrides DATABASE_URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed progress and summaries")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
