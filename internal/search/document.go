// Package search provides full-text search over the sake catalog using Bleve.
// The index lives in memory and is rebuilt whenever the catalog changes.
package search

// Document is the indexed form of a catalog entry.
//
// Japanese fields are indexed with the standard analyzer, which splits
// ideographs into single-rune tokens; the romanised name carries the
// English analyzer so ASCII queries stem and fuzz sensibly.
type Document struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameEN      string   `json:"name_en"`
	Brewery     string   `json:"brewery"`
	Prefecture  string   `json:"prefecture"`
	Type        string   `json:"type"`
	Flavor      string   `json:"flavor"`
	Sweetness   string   `json:"sweetness"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Price       int      `json:"price"`
}

// ToMap converts the document to a map keyed by the mapped field names.
func (d *Document) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":          d.ID,
		"name":        d.Name,
		"name_en":     d.NameEN,
		"brewery":     d.Brewery,
		"prefecture":  d.Prefecture,
		"type":        d.Type,
		"flavor":      d.Flavor,
		"sweetness":   d.Sweetness,
		"description": d.Description,
		"price":       d.Price,
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	return m
}
