// Package tfidf keeps document-frequency statistics over stemmed terms.
package tfidf

import (
	"math"
	"sort"
)

// Engine is an incremental document-frequency table. Counts are updated as
// documents are added, so the table can be persisted and extended across
// runs without rebuilding the corpus.
type Engine struct {
	DocFreq   map[string]int `json:"docFreq"`
	TotalDocs int            `json:"totalDocs"`
}

// Stat is the corpus statistic for a single stem.
type Stat struct {
	Term    string  `json:"term"`
	DocFreq int     `json:"docFreq"`
	IDF     float64 `json:"idf"`
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{
		DocFreq: make(map[string]int),
	}
}

// AddDocument updates document frequency counts for a new document's terms.
// Each unique term increments its DF by 1.
func (e *Engine) AddDocument(terms []string) {
	if e.DocFreq == nil {
		e.DocFreq = make(map[string]int)
	}
	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		if !seen[t] {
			e.DocFreq[t]++
			seen[t] = true
		}
	}
	e.TotalDocs++
}

// IDF computes the inverse document frequency for a term.
// Uses smoothed formula: log2(1 + totalDocs/df).
// Returns 0 for unknown terms.
func (e *Engine) IDF(term string) float64 {
	df := e.DocFreq[term]
	if df == 0 {
		return 0
	}
	return math.Log2(1 + float64(e.TotalDocs)/float64(df))
}

// Top returns the n most frequent terms by document frequency, ties broken
// alphabetically. n <= 0 returns every term.
func (e *Engine) Top(n int) []Stat {
	stats := make([]Stat, 0, len(e.DocFreq))
	for term, df := range e.DocFreq {
		stats = append(stats, Stat{Term: term, DocFreq: df, IDF: e.IDF(term)})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].DocFreq != stats[j].DocFreq {
			return stats[i].DocFreq > stats[j].DocFreq
		}
		return stats[i].Term < stats[j].Term
	})
	if n > 0 && n < len(stats) {
		stats = stats[:n]
	}
	return stats
}
