package id

import (
	"fmt"

	"github.com/blevesearch/bleve/analysis"
	"github.com/blevesearch/bleve/registry"

	"github.com/kuandriy/indostem/stem"
)

const StemmerName = "stemmer_id"

type IndonesianStemmerFilter struct {
	stemmer *stem.Stemmer
}

func NewIndonesianStemmerFilter(stemmer *stem.Stemmer) *IndonesianStemmerFilter {
	return &IndonesianStemmerFilter{
		stemmer: stemmer,
	}
}

func (s *IndonesianStemmerFilter) Filter(input analysis.TokenStream) analysis.TokenStream {
	for _, token := range input {
		// if not protected keyword, stem it
		if !token.KeyWord {
			token.Term = []byte(s.stemmer.Stem(string(token.Term)))
		}
	}
	return input
}

// StemmerFilterConstructor accepts an optional boolean "derivational" entry
// in config; false restricts the filter to particles and possessives.
func StemmerFilterConstructor(config map[string]interface{}, cache *registry.Cache) (analysis.TokenFilter, error) {
	var opts []stem.Option
	if v, ok := config["derivational"]; ok {
		derivational, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%s: derivational must be a bool, got %T", StemmerName, v)
		}
		if !derivational {
			opts = append(opts, stem.WithoutDerivational())
		}
	}
	return NewIndonesianStemmerFilter(stem.New(opts...)), nil
}

func init() {
	registry.RegisterTokenFilter(StemmerName, StemmerFilterConstructor)
}
