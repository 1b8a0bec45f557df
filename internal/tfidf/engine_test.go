package tfidf

import (
	"math"
	"testing"

	"github.com/kuandriy/indostem/internal/text"
	"github.com/kuandriy/indostem/stem"
)

func TestEngineAddDocument(t *testing.T) {
	e := NewEngine()
	e.AddDocument([]string{"makan", "main", "jatuh"})
	e.AddDocument([]string{"makan", "lari", "menang"})
	e.AddDocument([]string{"baca", "atur", "kasih"})

	if e.TotalDocs != 3 {
		t.Errorf("TotalDocs = %d, want 3", e.TotalDocs)
	}
	if e.DocFreq["makan"] != 2 {
		t.Errorf("DocFreq[makan] = %d, want 2", e.DocFreq["makan"])
	}
	if e.DocFreq["main"] != 1 {
		t.Errorf("DocFreq[main] = %d, want 1", e.DocFreq["main"])
	}
	if e.DocFreq["baca"] != 1 {
		t.Errorf("DocFreq[baca] = %d, want 1", e.DocFreq["baca"])
	}
}

func TestEngineAddDocumentDeduplicates(t *testing.T) {
	e := NewEngine()
	e.AddDocument([]string{"makan", "makan", "makan"})

	if e.TotalDocs != 1 {
		t.Errorf("TotalDocs = %d, want 1", e.TotalDocs)
	}
	if e.DocFreq["makan"] != 1 {
		t.Errorf("DocFreq[makan] = %d, want 1 (deduplicated)", e.DocFreq["makan"])
	}
}

func TestEngineAddDocumentZeroValue(t *testing.T) {
	var e Engine
	e.AddDocument([]string{"makan"})
	if e.DocFreq["makan"] != 1 {
		t.Errorf("DocFreq[makan] = %d, want 1", e.DocFreq["makan"])
	}
}

func TestEngineIDF(t *testing.T) {
	e := NewEngine()
	e.AddDocument([]string{"makan", "main"})
	e.AddDocument([]string{"makan", "lari"})
	e.AddDocument([]string{"baca", "atur"})

	// "makan" appears in 2/3 docs: log2(1 + 3/2)
	got := e.IDF("makan")
	want := math.Log2(1 + 3.0/2.0)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("IDF(makan) = %f, want %f", got, want)
	}

	// "main" appears in 1/3 docs: log2(1 + 3/1) = 2
	if got := e.IDF("main"); math.Abs(got-2.0) > 1e-10 {
		t.Errorf("IDF(main) = %f, want 2.0", got)
	}

	if e.IDF("unknown") != 0 {
		t.Error("IDF of unknown term should be 0")
	}
}

func TestEngineTop(t *testing.T) {
	e := NewEngine()
	e.AddDocument([]string{"makan", "main", "lari"})
	e.AddDocument([]string{"makan", "lari"})
	e.AddDocument([]string{"makan", "baca"})

	top := e.Top(2)
	if len(top) != 2 {
		t.Fatalf("len(Top(2)) = %d, want 2", len(top))
	}
	if top[0].Term != "makan" || top[0].DocFreq != 3 {
		t.Errorf("Top[0] = %+v, want makan/3", top[0])
	}
	if top[1].Term != "lari" || top[1].DocFreq != 2 {
		t.Errorf("Top[1] = %+v, want lari/2", top[1])
	}

	all := e.Top(0)
	if len(all) != 4 {
		t.Fatalf("len(Top(0)) = %d, want 4", len(all))
	}
	// baca and main tie on DF 1; alphabetical order.
	if all[2].Term != "baca" || all[3].Term != "main" {
		t.Errorf("tie order = %s, %s, want baca, main", all[2].Term, all[3].Term)
	}
	if all[3].IDF != e.IDF("main") {
		t.Errorf("Top IDF = %f, want %f", all[3].IDF, e.IDF("main"))
	}
}

func TestEngineWithAnalyzer(t *testing.T) {
	a := &text.Analyzer{Stemmer: stem.New()}
	e := NewEngine()
	e.AddDocument(a.Terms("Permainan dimakan"))
	e.AddDocument(a.Terms("makanan berjatuhan"))

	if e.DocFreq["makan"] != 2 {
		t.Errorf("DocFreq[makan] = %d, want 2 (dimakan and makanan share a stem)", e.DocFreq["makan"])
	}
	if e.DocFreq["main"] != 1 {
		t.Errorf("DocFreq[main] = %d, want 1", e.DocFreq["main"])
	}
}
