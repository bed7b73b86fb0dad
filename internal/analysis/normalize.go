package analysis

import (
	"regexp"
	"strings"
	"unicode"
)

// Token is a normalized word form: lowercase, alphabetic, not a stopword, lemmatized
type Token string

// wordPattern matches maximal runs of Unicode letters, digits and underscores
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Normalize converts raw text into an ordered sequence of tokens.
// Order and duplicates are kept because tagging depends on neighboring tokens.
func (r *Resources) Normalize(text string) []Token {
	segments := wordPattern.FindAllString(text, -1)
	tokens := make([]Token, 0, len(segments))
	for _, segment := range segments {
		if !isAlpha(segment) {
			continue
		}
		word := strings.ToLower(segment)
		if r.Stopwords.Contains(word) {
			continue
		}
		tokens = append(tokens, Token(r.lemma(word)))
	}
	return tokens
}

func (r *Resources) lemma(word string) string {
	if r.Lemmatizer == nil {
		return word
	}
	lemma := strings.ToLower(r.Lemmatizer.Lemma(word))
	if lemma == "" {
		return word
	}
	return lemma
}

// isAlpha reports whether s is non-empty and made only of letters
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Strings converts tokens to plain strings
func Strings(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = string(t)
	}
	return out
}
