// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-screener/internal/analysis"
	"github.com/jonathan/candidate-screener/internal/pipeline"
	"github.com/jonathan/candidate-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxTermsToShow caps keyword and skill lists
	maxTermsToShow = 12
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// terms renders a word list, shortened to maxTermsToShow
func terms(words []string) string {
	if len(words) == 0 {
		return "(none)"
	}
	if len(words) <= maxTermsToShow {
		return strings.Join(words, ", ")
	}
	return fmt.Sprintf("%s ... and %d more",
		strings.Join(words[:maxTermsToShow], ", "), len(words)-maxTermsToShow)
}

// PrintProgress prints one pipeline progress event
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(event pipeline.ProgressEvent) {
	fmt.Fprintf(p.out, "[VERBOSE] %-9s %s\n", event.Step, event.Message)
}

// PrintAnalysis outputs the keyword and skill sets extracted from a document.
func (p *Printer) PrintAnalysis(source string, result *analysis.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if source != "" {
		sb.WriteString(fmt.Sprintf("Source:   %s\n", source))
	}
	sb.WriteString(fmt.Sprintf("Tokens:   %d\n", len(result.Tokens)))
	sb.WriteString(fmt.Sprintf("Keywords: %s\n", terms(result.Keywords)))
	sb.WriteString(fmt.Sprintf("Skills:   %s", terms(result.Skills)))

	p.printBox("TEXT ANALYSIS", sb.String())
}

// PrintComparison outputs per-reference match scores and the verdict for one candidate.
func (p *Printer) PrintComparison(c *pipeline.Comparison) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", c.Candidate.Name))
	sb.WriteString(fmt.Sprintf("Skills:    %s\n\n", terms(c.Candidate.SkillSet())))

	count := min(len(c.MatchScores), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %-30s %d/3\n", c.MatchScores[i].Name, c.MatchScores[i].Score))
	}
	if len(c.MatchScores) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(c.MatchScores)-maxItemsToShow))
	}

	verdict := "not selected"
	if c.Selected {
		verdict = "selected"
	}
	sb.WriteString(fmt.Sprintf("\nAggregate: %d (%s)\n", c.Aggregate, verdict))
	sb.WriteString(fmt.Sprintf("Feedback:  %s", strings.TrimSpace(c.Feedback)))

	p.printBox("CANDIDATE COMPARISON", sb.String())
}

// PrintScores outputs the scores of a comparison run in candidate order.
func (p *Printer) PrintScores(scores []types.CandidateScore) {
	if len(scores) == 0 {
		return
	}

	var sb strings.Builder
	selected := 0
	for _, s := range scores {
		mark := " "
		if s.Selected {
			mark = "✓"
			selected++
		}
		sb.WriteString(fmt.Sprintf("%s %-40s %3d\n", mark, s.Name, s.Score))
	}
	sb.WriteString(fmt.Sprintf("\nSelected %d of %d", selected, len(scores)))

	p.printBox("CANDIDATE SCORES", sb.String())
}

// PrintRanking outputs ranked records.
func (p *Printer) PrintRanking(entries []types.RankedEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-4s %-30s %7s %8s\n", "#", "Name", "Rewards", "Academic"))
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%-4d %-30s %7d %8.2f\n", e.Rank, e.Name, e.RewardCount, e.AcademicScore))
	}

	p.printBox("RANKING", strings.TrimSuffix(sb.String(), "\n"))
}
