// Package sake holds the sake catalog and the preference-based recommender.
package sake

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/iroha-labs/palette-server/internal/search"
)

// Sake is one catalog entry.
type Sake struct {
	ID                 string   `yaml:"id" json:"id"`
	Name               string   `yaml:"name" json:"name"`
	NameEN             string   `yaml:"name_en" json:"name_en,omitempty"`
	Brewery            string   `yaml:"brewery" json:"brewery"`
	Prefecture         string   `yaml:"prefecture" json:"prefecture"`
	Type               string   `yaml:"type" json:"type"`
	RicePolishingRatio string   `yaml:"rice_polishing_ratio" json:"rice_polishing_ratio"`
	AlcoholContent     string   `yaml:"alcohol_content" json:"alcohol_content"`
	Flavor             string   `yaml:"flavor" json:"flavor"`
	Aroma              string   `yaml:"aroma" json:"aroma"`
	Sweetness          string   `yaml:"sweetness" json:"sweetness"`
	Acidity            string   `yaml:"acidity" json:"acidity"`
	Umami              string   `yaml:"umami" json:"umami"`
	Description        string   `yaml:"description" json:"description"`
	Price              string   `yaml:"price" json:"price"`
	ImageURL           string   `yaml:"image_url" json:"image_url,omitempty"`
	Tags               []string `yaml:"tags" json:"tags"`
}

// PriceYen extracts the numeric price, e.g. "¥8,000" -> 8000.
// ok is false when the price carries no digits.
func (s Sake) PriceYen() (int, bool) {
	return parseYen(s.Price)
}

func (s Sake) document() *search.Document {
	price, _ := s.PriceYen()
	return &search.Document{
		ID:          s.ID,
		Name:        s.Name,
		NameEN:      s.NameEN,
		Brewery:     s.Brewery,
		Prefecture:  s.Prefecture,
		Type:        s.Type,
		Flavor:      s.Flavor,
		Sweetness:   s.Sweetness,
		Description: s.Description,
		Tags:        s.Tags,
		Price:       price,
	}
}

func parseYen(s string) (int, bool) {
	var b strings.Builder
	for _, r := range norm.NFKC.String(s) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// normalize folds width variants (full-width digits, half-width katakana)
// and trims surrounding space so user input compares equal to catalog values.
func normalize(s string) string {
	return strings.TrimFunc(norm.NFKC.String(s), unicode.IsSpace)
}
