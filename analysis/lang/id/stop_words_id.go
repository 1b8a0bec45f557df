package id

import (
	"github.com/blevesearch/bleve/analysis"
	"github.com/blevesearch/bleve/registry"

	"github.com/kuandriy/indostem/stopwords"
)

const StopName = "stop_id"

func TokenMapConstructor(config map[string]interface{}, cache *registry.Cache) (analysis.TokenMap, error) {
	rv := analysis.NewTokenMap()
	for _, w := range stopwords.List() {
		rv.AddToken(w)
	}
	return rv, nil
}

func init() {
	registry.RegisterTokenMap(StopName, TokenMapConstructor)
}
