package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a pool by reward count, then academic score",
	Long:  "Orders the records of a pool by reward count descending, then academic score descending. Ties keep table order.",
	RunE:  runRank,
}

var (
	rankTable string
	rankJSON  bool
)

func init() {
	rankCmd.Flags().StringVar(&rankTable, "table", "", "Pool table (default reference table)")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context(), cmd, true, false)
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.screener.Rank(cmd.Context(), rankTable)
	if err != nil {
		return err
	}

	if rankJSON {
		return writeJSON(s.out, entries)
	}
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(s.out, "No records to rank")
		return nil
	}
	s.printer.PrintRanking(entries)
	return nil
}
