package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for sake documents.
//
//  1. Romanised name with English stemming, boosted at query time
//  2. Japanese text (name, brewery, description) via the standard analyzer
//  3. Keyword fields for exact filters and tags
//  4. Numeric price for range queries
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = standard.Name

	docMapping := bleve.NewDocumentMapping()

	// --- Text fields ---

	nameENFieldMapping := bleve.NewTextFieldMapping()
	nameENFieldMapping.Analyzer = en.AnalyzerName
	nameENFieldMapping.Store = true
	nameENFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("name_en", nameENFieldMapping)

	nameFieldMapping := bleve.NewTextFieldMapping()
	nameFieldMapping.Analyzer = standard.Name
	nameFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("name", nameFieldMapping)

	breweryFieldMapping := bleve.NewTextFieldMapping()
	breweryFieldMapping.Analyzer = standard.Name
	breweryFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("brewery", breweryFieldMapping)

	// Description - searchable but not stored
	descFieldMapping := bleve.NewTextFieldMapping()
	descFieldMapping.Analyzer = standard.Name
	descFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("description", descFieldMapping)

	// --- Keyword fields ---

	for _, field := range []string{"id", "prefecture", "type", "flavor", "sweetness", "tags"} {
		fm := bleve.NewTextFieldMapping()
		fm.Analyzer = keyword.Name
		docMapping.AddFieldMappingsAt(field, fm)
	}

	// --- Numeric fields ---

	priceFieldMapping := bleve.NewNumericFieldMapping()
	priceFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("price", priceFieldMapping)

	indexMapping.DefaultMapping = docMapping

	return indexMapping
}
