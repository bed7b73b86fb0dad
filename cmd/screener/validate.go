package main

import (
	"fmt"

	"github.com/jonathan/candidate-screener/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON input file against its schema",
	Long:  "Validates a record, records or candidate JSON file against the embedded JSON Schema.",
	RunE:  runValidate,
}

var (
	validateKind string
	validateFile string
)

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "", "Document kind: record, records or candidate (required)")
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to JSON file (required)")

	if err := validateCmd.MarkFlagRequired("kind"); err != nil {
		panic(fmt.Sprintf("failed to mark kind flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if err := schemas.ValidateFile(schemas.Kind(validateKind), validateFile); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s is a valid %s document\n", validateFile, validateKind)
	return nil
}
