package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Decide whether a candidate is selected",
	Long:  "Selects a candidate when the aggregate score against the reference pool is at least 3.",
	RunE:  runSelect,
}

var (
	selectCandidate candidateFlags
	selectTable     string
)

func init() {
	selectCandidate.register(selectCmd)
	selectCmd.Flags().StringVar(&selectTable, "table", "", "Reference pool table (default reference table)")
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, _ []string) error {
	in, err := selectCandidate.input()
	if err != nil {
		return err
	}

	s, err := openSession(cmd.Context(), cmd, true, in.ResumePath != "" || in.ResumeText != "")
	if err != nil {
		return err
	}
	defer s.Close()

	comparison, err := s.screener.Compare(cmd.Context(), in, selectTable)
	if err != nil {
		return err
	}

	verdict := "not selected"
	if comparison.Selected {
		verdict = "selected"
	}
	_, _ = fmt.Fprintf(s.out, "%s: %s (aggregate %d over %d references)\n",
		in.Name, verdict, comparison.Aggregate, len(comparison.MatchScores))
	return nil
}
