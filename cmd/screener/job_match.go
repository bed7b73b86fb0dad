package main

import (
	"fmt"

	"github.com/jonathan/candidate-screener/internal/fetch"
	"github.com/jonathan/candidate-screener/internal/ingestion"
	"github.com/spf13/cobra"
)

var jobMatchCmd = &cobra.Command{
	Use:   "job-match",
	Short: "Find pool records whose skills match a job description",
	Long:  "Extracts keywords and skills from a job description and lists the records whose stored skills contain any of them.",
	RunE:  runJobMatch,
}

var (
	jobMatchText  string
	jobMatchFile  string
	jobMatchURL   string
	jobMatchTable string
)

func init() {
	jobMatchCmd.Flags().StringVarP(&jobMatchText, "description", "d", "", "Job description text")
	jobMatchCmd.Flags().StringVarP(&jobMatchFile, "file", "f", "", "Path to job description document")
	jobMatchCmd.Flags().StringVarP(&jobMatchURL, "url", "u", "", "URL of a job posting to fetch")
	jobMatchCmd.Flags().StringVar(&jobMatchTable, "table", "", "Pool table (default reference table)")
	jobMatchCmd.MarkFlagsMutuallyExclusive("description", "file", "url")
	rootCmd.AddCommand(jobMatchCmd)
}

func runJobMatch(cmd *cobra.Command, _ []string) error {
	description := jobMatchText
	source := jobMatchFile
	switch {
	case jobMatchFile != "":
		text, err := ingestion.ExtractText(jobMatchFile)
		if err != nil {
			return err
		}
		description = text
	case jobMatchURL != "":
		text, err := fetchPosting(cmd, jobMatchURL)
		if err != nil {
			return err
		}
		description = text
		source = jobMatchURL
	}
	if description == "" {
		return fmt.Errorf("one of --description, --file or --url is required")
	}

	s, err := openSession(cmd.Context(), cmd, true, true)
	if err != nil {
		return err
	}
	defer s.Close()

	matched, result, err := s.screener.JobMatch(cmd.Context(), description, jobMatchTable)
	if err != nil {
		return err
	}

	if s.cfg.Verbose {
		s.printer.PrintAnalysis(source, result)
	}
	if len(matched) == 0 {
		_, _ = fmt.Fprintln(s.out, "No matching records")
		return nil
	}
	for _, r := range matched {
		_, _ = fmt.Fprintln(s.out, r.Name)
	}
	return nil
}
