package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/config"
	"github.com/jonathan/candidate-screener/internal/db"
	"github.com/jonathan/candidate-screener/internal/fetch"
	"github.com/jonathan/candidate-screener/internal/observability"
	"github.com/jonathan/candidate-screener/internal/pipeline"
	"github.com/jonathan/candidate-screener/internal/schemas"
	"github.com/jonathan/candidate-screener/internal/types"
	"github.com/spf13/cobra"
)

// loadResources builds the linguistic resources. Tests replace it with the fixture model.
var loadResources = func(cfg *config.Config) (*analysis.Resources, error) {
	return analysis.LoadResources(analysis.Options{StopwordsPath: cfg.StopwordsPath})
}

// loadSettings merges the config file, environment and persistent flags. Flags win.
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbURL != "" {
		cfg.DatabaseURL = dbURL
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// session is the per-command runtime: settings, an open store and optionally the
// analysis resources.
type session struct {
	cfg      *config.Config
	screener *pipeline.Screener
	printer  *observability.Printer
	out      io.Writer
}

func (s *session) Close() {
	if s.screener.Store != nil {
		s.screener.Store.Close()
	}
}

// openSession opens the configured store. withStore and withResources select what
// the command needs so cheap commands skip loading the tagger model.
func openSession(ctx context.Context, cmd *cobra.Command, withStore, withResources bool) (*session, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	s := &session{
		cfg:     cfg,
		printer: observability.NewPrinter(out),
		out:     out,
		screener: &pipeline.Screener{
			ReferenceTable:  cfg.ReferenceTable,
			CandidateTable:  cfg.CandidateTable,
			NormalizeSkills: cfg.NormalizeSkills,
			Concurrency:     cfg.Concurrency,
		},
	}
	if cfg.Verbose {
		s.screener.OnProgress = s.printer.PrintProgress
	}

	if withResources {
		resources, err := loadResources(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load analysis resources: %w", err)
		}
		s.screener.Resources = resources
	}

	if withStore {
		store, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		s.screener.Store = store
	}

	return s, nil
}

// writeJSON prints v as indented JSON
// fetchPosting downloads a job posting and returns its cleaned text.
func fetchPosting(cmd *cobra.Command, url string) (string, error) {
	return fetch.New(nil).JobDescription(cmd.Context(), url)
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// writeOutput writes v as JSON to path, or to out when path is empty
func writeOutput(out io.Writer, path string, v any) error {
	if path == "" {
		return writeJSON(out, v)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	_, _ = fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

// readDocument reads a JSON file, validates it against an embedded schema and decodes it into v
func readDocument(path string, kind schemas.Kind, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := schemas.ValidateDocument(kind, data); err != nil {
		return fmt.Errorf("%s is not a valid %s document: %w", path, kind, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// candidateFlags describes one candidate, from a JSON file or from individual flags
type candidateFlags struct {
	file     string
	name     string
	rewards  int
	academic float64
	skills   string
	resume   string
}

func (f *candidateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "candidate", "c", "", "Path to candidate JSON file")
	cmd.Flags().StringVar(&f.name, "name", "", "Candidate name")
	cmd.Flags().IntVar(&f.rewards, "rewards", 0, "Number of rewards")
	cmd.Flags().Float64Var(&f.academic, "academic", 0, "Academic score")
	cmd.Flags().StringVar(&f.skills, "skills", "", "Comma-separated skills")
	cmd.Flags().StringVarP(&f.resume, "resume", "r", "", "Path to resume (.txt, .md, .pdf, .docx, .html)")
	cmd.MarkFlagsMutuallyExclusive("candidate", "name")
}

// input returns the candidate described by the flags. A --resume flag overrides
// any resume named in the candidate file.
func (f *candidateFlags) input() (pipeline.CandidateInput, error) {
	var in pipeline.CandidateInput
	if f.file != "" {
		if err := readDocument(f.file, schemas.KindCandidate, &in); err != nil {
			return in, err
		}
	} else {
		if f.name == "" {
			return in, fmt.Errorf("either --candidate or --name is required")
		}
		in.Record = types.Record{
			Name:          f.name,
			RewardCount:   f.rewards,
			AcademicScore: f.academic,
			Skills:        types.ParseSkillList(f.skills),
		}
	}
	if f.resume != "" {
		in.ResumePath = f.resume
		in.ResumeText = ""
	}
	return in, nil
}
