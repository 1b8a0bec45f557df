// Package text turns running Indonesian text into stemmed index terms.
// Splitting text into words happens here; the stemmer itself only ever sees
// one lowercase token at a time.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kuandriy/indostem/stem"
	"github.com/kuandriy/indostem/stopwords"
)

// Analyzer splits text into words and stems each one.
type Analyzer struct {
	Stemmer *stem.Stemmer

	// RemoveStopWords drops stop words before stemming.
	RemoveStopWords bool

	// MinLength passes words with fewer characters (runes) through
	// unstemmed. Zero stems everything.
	MinLength int
}

// Pair is a word as found in the text and the term it stems to.
type Pair struct {
	Word string
	Stem string
}

// Words lowercases s and splits it into words, keeping hyphens within words
// so reduplicated forms like "tiba-tiba" stay whole.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
}

// Term stems a single word according to the analyzer's settings.
func (a *Analyzer) Term(word string) string {
	if utf8.RuneCountInString(word) < a.MinLength {
		return word
	}
	return a.Stemmer.Stem(word)
}

// Pairs splits s into words and stems each one. Leading and trailing hyphens
// are trimmed first; stop words are dropped if configured.
func (a *Analyzer) Pairs(s string) []Pair {
	var pairs []Pair
	for _, w := range Words(s) {
		w = strings.Trim(w, "-")
		if w == "" {
			continue
		}
		if a.RemoveStopWords && stopwords.Contains(w) {
			continue
		}
		pairs = append(pairs, Pair{Word: w, Stem: a.Term(w)})
	}
	return pairs
}

// Terms converts raw text into stemmed terms. Returns nil when nothing remains.
func (a *Analyzer) Terms(s string) []string {
	var terms []string
	for _, p := range a.Pairs(s) {
		terms = append(terms, p.Stem)
	}
	return terms
}
