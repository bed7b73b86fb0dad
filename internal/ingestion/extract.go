package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Kind is a supported document format
type Kind string

const (
	KindText Kind = "text"
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
	KindHTML Kind = "html"
)

// ExtractError represents a document that could not be turned into text
type ExtractError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error for %s: %s", e.Path, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// KindFromPath detects the document kind from a file extension
func KindFromPath(path string) (Kind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".text", "":
		return KindText, true
	case ".pdf":
		return KindPDF, true
	case ".docx":
		return KindDOCX, true
	case ".html", ".htm":
		return KindHTML, true
	default:
		return "", false
	}
}

// ExtractText reads a document file and returns its cleaned plain text
func ExtractText(path string) (string, error) {
	kind, ok := KindFromPath(path)
	if !ok {
		return "", &ExtractError{Path: path, Message: fmt.Sprintf("unsupported file type %q", filepath.Ext(path))}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ExtractError{Path: path, Message: "file not found", Cause: err}
		}
		return "", &ExtractError{Path: path, Message: "failed to read file", Cause: err}
	}

	text, err := ExtractTextFromBytes(kind, data)
	if err != nil {
		return "", &ExtractError{Path: path, Message: fmt.Sprintf("failed to extract %s text", kind), Cause: err}
	}
	return text, nil
}

// ExtractTextFromBytes converts raw document bytes of the given kind to cleaned plain text
func ExtractTextFromBytes(kind Kind, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch kind {
	case KindText:
		text = string(data)
	case KindPDF:
		text, err = extractPDFText(data)
	case KindDOCX:
		text, err = extractDocxText(data)
	case KindHTML:
		text, err = extractHTMLText(data)
	default:
		return "", fmt.Errorf("unsupported document kind: %s", kind)
	}
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:cr/>`)
	docxTab          = regexp.MustCompile(`<w:tab/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText strips WordprocessingML markup, keeping paragraph breaks
func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, " ")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

// contentSelectors are tried in order to find the main body of a job posting or resume page
var contentSelectors = []string{
	".job-description",
	"#job-description",
	".job-details",
	".posting-content",
	".resume",
	"main",
	"article",
	".content",
	"#content",
}

func extractHTMLText(data []byte) (string, error) {
	return ExtractHTML(data, contentSelectors)
}

// ExtractHTML returns the text of the first element matching contentSelectors,
// or of the body when none match. Navigation, scripts and any noiseSelectors are
// removed first.
func ExtractHTML(data []byte, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner").Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			main = sel.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	// Block elements become line breaks so words across them stay separate
	main.Find("p, li, div, br, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return CleanText(main.Text()), nil
}
