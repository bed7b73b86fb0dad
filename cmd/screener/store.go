package main

import (
	"fmt"

	"github.com/jonathan/candidate-screener/internal/schemas"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Insert records into a pool table",
	Long:  "Inserts one record given by flags, or a batch from a JSON records file, into a pool table. The table is created if needed.",
	RunE:  runStore,
}

var (
	storeFile     string
	storeTable    string
	storeName     string
	storeRewards  int
	storeAcademic float64
	storeSkills   string
)

func init() {
	storeCmd.Flags().StringVarP(&storeFile, "file", "f", "", "Path to JSON records file (array of records)")
	storeCmd.Flags().StringVar(&storeTable, "table", "", "Pool table (default reference table)")
	storeCmd.Flags().StringVar(&storeName, "name", "", "Record name")
	storeCmd.Flags().IntVar(&storeRewards, "rewards", 0, "Number of rewards")
	storeCmd.Flags().Float64Var(&storeAcademic, "academic", 0, "Academic score")
	storeCmd.Flags().StringVar(&storeSkills, "skills", "", "Comma-separated skills")
	storeCmd.MarkFlagsMutuallyExclusive("file", "name")
	rootCmd.AddCommand(storeCmd)
}

func runStore(cmd *cobra.Command, _ []string) error {
	var records []types.Record
	switch {
	case storeFile != "":
		if err := readDocument(storeFile, schemas.KindRecords, &records); err != nil {
			return err
		}
	case storeName != "":
		records = []types.Record{{
			Name:          storeName,
			RewardCount:   storeRewards,
			AcademicScore: storeAcademic,
			Skills:        types.ParseSkillList(storeSkills),
		}}
	default:
		return fmt.Errorf("either --file or --name is required")
	}

	s, err := openSession(cmd.Context(), cmd, true, false)
	if err != nil {
		return err
	}
	defer s.Close()

	stored, err := s.screener.StoreRecords(cmd.Context(), storeTable, records)
	for _, r := range stored {
		_, _ = fmt.Fprintf(s.out, "Stored %s (%s)\n", r.Name, r.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to store records: %w", err)
	}
	return nil
}
