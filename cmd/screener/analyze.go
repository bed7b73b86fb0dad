package main

import (
	"fmt"

	"github.com/jonathan/candidate-screener/internal/pipeline"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Extract keywords and skills from text or documents",
	Long: "Normalizes text (tokenize, drop stopwords, lemmatize), tags each token with its part of speech " +
		"and prints the keyword (noun) and skill (verb) sets. Files are loaded concurrently.",
	RunE: runAnalyze,
}

var (
	analyzeText   string
	analyzeURLs   []string
	analyzeOutput string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "Text to analyze instead of files")
	analyzeCmd.Flags().StringArrayVarP(&analyzeURLs, "url", "u", nil, "Job posting URL to fetch and analyze (repeatable)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeText == "" && len(args) == 0 && len(analyzeURLs) == 0 {
		return fmt.Errorf("provide --text, --url or at least one file")
	}

	s, err := openSession(cmd.Context(), cmd, false, true)
	if err != nil {
		return err
	}
	defer s.Close()

	var results []pipeline.DocumentAnalysis
	if analyzeText != "" {
		results = append(results, pipeline.DocumentAnalysis{Result: s.screener.Analyze(analyzeText)})
	}
	for _, u := range analyzeURLs {
		text, err := fetchPosting(cmd, u)
		if err != nil {
			return err
		}
		results = append(results, pipeline.DocumentAnalysis{Path: u, Result: s.screener.Analyze(text)})
	}
	if len(args) > 0 {
		docs, err := s.screener.AnalyzeDocuments(cmd.Context(), args)
		if err != nil {
			return err
		}
		results = append(results, docs...)
	}

	if s.cfg.Verbose {
		for _, r := range results {
			s.printer.PrintAnalysis(r.Path, r.Result)
		}
	}

	return writeOutput(s.out, analyzeOutput, results)
}
