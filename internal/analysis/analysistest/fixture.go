// Package analysistest provides a minimal fixture model for tests that need
// analysis.Resources without loading the full lemmatizer and tagger.
package analysistest

import (
	"strings"

	"github.com/jonathan/candidate-screener/internal/analysis"
)

// MapLemmatizer looks words up in a fixed table and returns unknown words unchanged
type MapLemmatizer map[string]string

// Lemma implements analysis.Lemmatizer
func (m MapLemmatizer) Lemma(word string) string {
	if lemma, ok := m[word]; ok {
		return lemma
	}
	return word
}

// MapTagger tags tokens from a fixed table, falling back to Default
type MapTagger struct {
	Tags    map[string]string
	Default string
}

// Tag implements analysis.Tagger
func (m MapTagger) Tag(tokens []string) []string {
	tags := make([]string, len(tokens))
	for i, tok := range tokens {
		if t, ok := m.Tags[tok]; ok {
			tags[i] = t
			continue
		}
		tags[i] = m.Default
	}
	return tags
}

// Lemmas is the fixture lemma table
var Lemmas = MapLemmatizer{
	"experienced": "experience",
	"coding":      "code",
	"solving":     "solve",
	"engineers":   "engineer",
	"built":       "build",
	"managed":     "manage",
	"leading":     "lead",
	"services":    "service",
	"teams":       "team",
}

// Tags is the fixture tag table
var Tags = map[string]string{
	"experience": "JJ",
	"software":   "NN",
	"engineer":   "NN",
	"passion":    "NN",
	"code":       "VBG",
	"problem":    "NN",
	"solve":      "VBG",
	"build":      "VBD",
	"manage":     "VBD",
	"lead":       "VBG",
	"python":     "NN",
	"service":    "NNS",
	"team":       "NNS",
	"senior":     "JJ",
}

// Stopwords is a small stopword subset
var Stopwords = []string{"a", "an", "the", "and", "with", "for", "of", "to", "in", "is", "we", "our"}

// New returns fixture resources
func New() *analysis.Resources {
	set, err := analysis.ParseStopwords(strings.NewReader(strings.Join(Stopwords, "\n")))
	if err != nil {
		panic(err)
	}
	return &analysis.Resources{
		Stopwords:  set,
		Lemmatizer: Lemmas,
		Tagger:     MapTagger{Tags: Tags, Default: "JJ"},
	}
}
