package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Print threshold feedback for a candidate",
	Long:  "Checks a candidate against fixed thresholds (3 rewards, academic score 8, 3 skills) without consulting any pool.",
	RunE:  runEvaluate,
}

var evaluateCandidate candidateFlags

func init() {
	evaluateCandidate.register(evaluateCmd)
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	in, err := evaluateCandidate.input()
	if err != nil {
		return err
	}

	// resources are only needed to read skills out of a resume
	s, err := openSession(cmd.Context(), cmd, false, in.ResumePath != "" || in.ResumeText != "")
	if err != nil {
		return err
	}
	defer s.Close()

	feedback, err := s.screener.Evaluate(in)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(s.out, "%s: %s\n", in.Name, feedback)
	return nil
}
