package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/analysis/analysistest"
	"github.com/jonathan/candidate-screener/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const sampleResume = "Experienced software engineer with a passion for coding and problem-solving."

// resetFlags restores every flag of cmd and its children to its default value
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// testEnv isolates a CLI test: fixture analysis model, a temp SQLite database
// and no config or database URL from the developer environment.
func testEnv(t *testing.T) string {
	t.Helper()
	for _, key := range []string{config.EnvDatabaseURL, config.EnvTable, config.EnvStopwordsPath, config.EnvPort} {
		t.Setenv(key, "")
	}

	original := loadResources
	loadResources = func(*config.Config) (*analysis.Resources, error) { return analysistest.New(), nil }
	t.Cleanup(func() { loadResources = original })

	return filepath.Join(t.TempDir(), "screener.db")
}

// runCLI executes the root command with args and returns combined output
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	resetFlags(rootCmd)
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func seedReferences(t *testing.T, dbPath string) {
	t.Helper()
	records := writeFile(t, "employees.json", `[
		{"name": "E1", "reward_count": 5, "academic_score": 9.0, "skills": ["python", "code"]},
		{"name": "E2", "reward_count": 1, "academic_score": 7.0, "skills": ["java"]}
	]`)
	_, err := runCLI(t, "store", "--db", dbPath, "--file", records)
	require.NoError(t, err)
}
