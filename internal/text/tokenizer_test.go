package text

import (
	"reflect"
	"testing"

	"github.com/kuandriy/indostem/stem"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "punctuation stripped",
			input: "Dia makan, lalu pergi!",
			want:  []string{"dia", "makan", "lalu", "pergi"},
		},
		{
			name:  "hyphens kept",
			input: "tiba-tiba hujan turun",
			want:  []string{"tiba-tiba", "hujan", "turun"},
		},
		{
			name:  "digits kept",
			input: "tahun 2024",
			want:  []string{"tahun", "2024"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q)\n  got  %v\n  want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnalyzerTerms(t *testing.T) {
	tests := []struct {
		name     string
		analyzer *Analyzer
		input    string
		want     []string
	}{
		{
			name:     "empty",
			analyzer: &Analyzer{Stemmer: stem.New()},
			input:    "",
			want:     nil,
		},
		{
			name:     "stems every word",
			analyzer: &Analyzer{Stemmer: stem.New()},
			input:    "Permainan berjatuhan kemenangan",
			want:     []string{"main", "jatuh", "menang"},
		},
		{
			name:     "stop words kept by default",
			analyzer: &Analyzer{Stemmer: stem.New()},
			input:    "dengan sepedaku",
			want:     []string{"dengan", "sepeda"},
		},
		{
			name:     "stop words removed",
			analyzer: &Analyzer{Stemmer: stem.New(), RemoveStopWords: true},
			input:    "kepada dia dengan sepedaku",
			want:     []string{"sepeda"},
		},
		{
			name:     "only stop words",
			analyzer: &Analyzer{Stemmer: stem.New(), RemoveStopWords: true},
			input:    "mengapa kepada dengan",
			want:     nil,
		},
		{
			name:     "short words untouched",
			analyzer: &Analyzer{Stemmer: stem.New(), MinLength: 6},
			input:    "gulai makanan",
			want:     []string{"gulai", "makan"},
		},
		{
			name:     "derivational disabled",
			analyzer: &Analyzer{Stemmer: stem.New(stem.WithoutDerivational())},
			input:    "mengambil sepedaku",
			want:     []string{"mengambil", "sepeda"},
		},
		{
			name:     "dangling hyphens trimmed",
			analyzer: &Analyzer{Stemmer: stem.New()},
			input:    "- gulai-",
			want:     []string{"gula"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.analyzer.Terms(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Terms(%q)\n  got  %v\n  want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnalyzerPairs(t *testing.T) {
	a := &Analyzer{Stemmer: stem.New(), RemoveStopWords: true}
	got := a.Pairs("-mengambil dengan kekasih- -")
	want := []Pair{
		{Word: "mengambil", Stem: "ambil"},
		{Word: "kekasih", Stem: "kasih"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Pairs()\n  got  %v\n  want %v", got, want)
	}
}

func TestAnalyzerMinLengthCountsRunes(t *testing.T) {
	// "édiakah" is 7 characters but 8 bytes.
	a := &Analyzer{Stemmer: stem.New(), MinLength: 8}
	if got := a.Term("édiakah"); got != "édiakah" {
		t.Errorf("Term(%q) = %q, want unchanged", "édiakah", got)
	}

	a.MinLength = 7
	if got := a.Term("édiakah"); got != "édia" {
		t.Errorf("Term(%q) = %q, want %q", "édiakah", got, "édia")
	}
}
