package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Manage pool tables",
}

var tableCreateCmd = &cobra.Command{
	Use:   "create [table...]",
	Short: "Create pool tables (default: reference and candidate tables)",
	RunE:  runTableCreate,
}

var tableDropCmd = &cobra.Command{
	Use:   "drop table...",
	Short: "Drop pool tables",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTableDrop,
}

func init() {
	tableCmd.AddCommand(tableCreateCmd, tableDropCmd)
	rootCmd.AddCommand(tableCmd)
}

func runTableCreate(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context(), cmd, true, false)
	if err != nil {
		return err
	}
	defer s.Close()

	tables := args
	if len(tables) == 0 {
		tables = []string{s.cfg.ReferenceTable, s.cfg.CandidateTable}
	}
	for _, t := range tables {
		if err := s.screener.Store.EnsureTable(cmd.Context(), t); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(s.out, "Created table %s\n", t)
	}
	return nil
}

func runTableDrop(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context(), cmd, true, false)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, t := range args {
		if err := s.screener.Store.DropTable(cmd.Context(), t); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(s.out, "Dropped table %s\n", t)
	}
	return nil
}
