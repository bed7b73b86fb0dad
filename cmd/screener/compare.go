package main

import (
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Score a candidate against the reference pool",
	Long: "Scores a candidate against every record of the reference pool (one point each for rewards, " +
		"academic score and shared skills), sums the points and prints the selection verdict and feedback.",
	RunE: runCompare,
}

var (
	compareCandidate candidateFlags
	compareTable     string
	compareOutput    string
)

func init() {
	compareCandidate.register(compareCmd)
	compareCmd.Flags().StringVar(&compareTable, "table", "", "Reference pool table (default reference table)")
	compareCmd.Flags().StringVarP(&compareOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	in, err := compareCandidate.input()
	if err != nil {
		return err
	}

	s, err := openSession(cmd.Context(), cmd, true, true)
	if err != nil {
		return err
	}
	defer s.Close()

	comparison, err := s.screener.Compare(cmd.Context(), in, compareTable)
	if err != nil {
		return err
	}

	if s.cfg.Verbose {
		s.printer.PrintAnalysis(in.ResumePath, comparison.Analysis)
		s.printer.PrintComparison(comparison)
	}
	return writeOutput(s.out, compareOutput, comparison)
}
