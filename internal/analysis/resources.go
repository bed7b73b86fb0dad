// Package analysis turns free-form resume and job description text into normalized
// tokens and extracts keyword (noun) and skill (verb) sets from them.
package analysis

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/tag"
)

//go:embed stopwords/english.txt
var englishStopwords string

// Lemmatizer reduces a lowercase word to its dictionary base form
type Lemmatizer interface {
	Lemma(word string) string
}

// Tagger assigns a Penn Treebank tag to every token of a sequence.
// The returned slice has the same length and order as tokens.
type Tagger interface {
	Tag(tokens []string) []string
}

// StopwordSet is a read-only set of lowercase stopwords
type StopwordSet map[string]struct{}

// Contains reports whether word is a stopword
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Resources holds the linguistic resources shared by the normalizer and the tagger.
// Built once at process start and never mutated, so concurrent callers may share it.
type Resources struct {
	Stopwords  StopwordSet
	Lemmatizer Lemmatizer
	Tagger     Tagger
}

// Options configures LoadResources
type Options struct {
	// StopwordsPath names a newline-delimited stopword file. Empty uses the embedded English list.
	StopwordsPath string
}

// LoadError represents an error loading a linguistic resource
type LoadError struct {
	Resource string
	Cause    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Resource, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// LoadResources builds the process-wide resources: stopwords, the golem English
// lemmatizer and the prose averaged perceptron tagger.
func LoadResources(opts Options) (*Resources, error) {
	stopwords, err := loadStopwords(opts.StopwordsPath)
	if err != nil {
		return nil, err
	}

	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, &LoadError{Resource: "lemmatizer", Cause: err}
	}

	return &Resources{
		Stopwords:  stopwords,
		Lemmatizer: lemmatizer,
		Tagger:     &perceptronTagger{tagger: tag.NewPerceptronTagger()},
	}, nil
}

func loadStopwords(path string) (StopwordSet, error) {
	if path == "" {
		return ParseStopwords(strings.NewReader(englishStopwords))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Resource: "stopwords " + path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	set, err := ParseStopwords(f)
	if err != nil {
		return nil, &LoadError{Resource: "stopwords " + path, Cause: err}
	}
	return set, nil
}

// ParseStopwords reads one stopword per line. Blank lines and lines starting with # are skipped.
func ParseStopwords(r io.Reader) (StopwordSet, error) {
	set := make(StopwordSet)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// perceptronTagger adapts the prose tagger to the Tagger interface
type perceptronTagger struct {
	tagger *tag.PerceptronTagger
}

func (p *perceptronTagger) Tag(tokens []string) []string {
	if len(tokens) == 0 {
		return []string{}
	}
	tagged := p.tagger.Tag(tokens)
	tags := make([]string, len(tokens))
	for i := range tokens {
		if i < len(tagged) {
			tags[i] = tagged[i].Tag
		}
	}
	return tags
}
