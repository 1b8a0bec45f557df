package main

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/kuandriy/indostem/internal/persist"
	"github.com/kuandriy/indostem/internal/text"
	"github.com/kuandriy/indostem/internal/tfidf"
)

type statsOptions struct {
	top      int
	savePath string
	reset    bool
	asJSON   bool
}

type statsReport struct {
	TotalDocs   int          `json:"totalDocs"`
	UniqueStems int          `json:"uniqueStems"`
	Top         []tfidf.Stat `json:"top"`
}

// handleStats builds document frequencies over stems, one document per input
// line. With a save path, previously saved statistics are extended.
func handleStats(a *text.Analyzer, r io.Reader, w io.Writer, opts statsOptions, logger *zap.Logger) error {
	e := tfidf.NewEngine()

	if opts.savePath != "" {
		if opts.reset {
			if err := persist.Remove(opts.savePath); err != nil {
				return fmt.Errorf("reset stats: %w", err)
			}
			logger.Info("statistics reset", zap.String("path", opts.savePath))
		}
		if err := persist.Load(opts.savePath, e); err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
	}

	before := e.TotalDocs
	err := eachLine(r, func(line string) error {
		if terms := a.Terms(line); len(terms) > 0 {
			e.AddDocument(terms)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Debug("documents added",
		zap.Int("added", e.TotalDocs-before),
		zap.Int("total", e.TotalDocs),
	)

	if opts.savePath != "" {
		if err := persist.SaveAtomic(opts.savePath, e); err != nil {
			return fmt.Errorf("save stats: %w", err)
		}
	}

	report := statsReport{
		TotalDocs:   e.TotalDocs,
		UniqueStems: len(e.DocFreq),
		Top:         e.Top(opts.top),
	}
	if opts.asJSON {
		return statsJSON(w, report)
	}
	return statsText(w, report)
}

func statsText(w io.Writer, r statsReport) error {
	fmt.Fprintf(w, "--- Stems: %d docs, %d unique stems ---\n", r.TotalDocs, r.UniqueStems)
	for _, s := range r.Top {
		if _, err := fmt.Fprintf(w, "  %-20s df=%-5d idf=%.3f\n", s.Term, s.DocFreq, s.IDF); err != nil {
			return err
		}
	}
	return nil
}

func statsJSON(w io.Writer, r statsReport) error {
	if r.Top == nil {
		r.Top = []tfidf.Stat{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
