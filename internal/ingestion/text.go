// Package ingestion loads resume and job description documents from disk and
// converts them to cleaned plain text for analysis.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	inlineSpace   = regexp.MustCompile(`[ \t\f\v]+`)
	excessBlank   = regexp.MustCompile(`\n\n\n+`)
	nonBreakSpace = strings.NewReplacer("\u00a0", " ", "\u200b", "")
)

// CleanText normalizes line endings and whitespace while keeping line structure.
// Runs of spaces collapse to one, trailing space is trimmed, and at most one blank
// line separates paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF -> LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = nonBreakSpace.Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
	}

	result := excessBlank.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}
