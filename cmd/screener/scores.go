package main

import (
	"github.com/jonathan/candidate-screener/internal/screening"
	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Score every stored candidate against the reference pool",
	Long:  "Compares each record of the candidate table with every record of the reference table and prints each candidate's aggregate score.",
	RunE:  runScores,
}

var (
	scoresCandidates string
	scoresReferences string
	scoresByName     bool
	scoresOutput     string
)

func init() {
	scoresCmd.Flags().StringVar(&scoresCandidates, "candidates", "", "Candidate pool table (default candidate table)")
	scoresCmd.Flags().StringVar(&scoresReferences, "references", "", "Reference pool table (default reference table)")
	scoresCmd.Flags().BoolVar(&scoresByName, "by-name", false, "Print a name -> score map instead of ordered rows")
	scoresCmd.Flags().StringVarP(&scoresOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	rootCmd.AddCommand(scoresCmd)
}

func runScores(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context(), cmd, true, false)
	if err != nil {
		return err
	}
	defer s.Close()

	scores, err := s.screener.CompareStored(cmd.Context(), scoresCandidates, scoresReferences)
	if err != nil {
		return err
	}

	if s.cfg.Verbose {
		s.printer.PrintScores(scores)
	}
	if scoresByName {
		return writeOutput(s.out, scoresOutput, screening.ScoreMap(scores))
	}
	return writeOutput(s.out, scoresOutput, scores)
}
