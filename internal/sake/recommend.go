package sake

// MaxRecommendations caps the number of sakes Recommend returns.
const MaxRecommendations = 3

// Price bands accepted in Preferences.Price.
const (
	PriceUnder1000   = "1000円以下"
	Price1000To3000  = "1000-3000円"
	Price3000To5000  = "3000-5000円"
	PriceOver5000    = "5000円以上"
	ExperienceNovice = "初心者"

	// dry is the sweetness value novices are steered away from.
	dry = "辛口"
	// premiumPrice is the price at which a sake counts as premium.
	premiumPrice = 5000
)

// Preferences filters the catalog. Empty fields do not filter.
type Preferences struct {
	Flavor     string `json:"flavor,omitempty" doc:"Exact flavor, e.g. フルーティ"`
	Sweetness  string `json:"sweetness,omitempty" doc:"Exact sweetness, e.g. 辛口"`
	Acidity    string `json:"acidity,omitempty" doc:"Exact acidity, e.g. 中程度"`
	Price      string `json:"price,omitempty" doc:"Price band: 1000円以下, 1000-3000円, 3000-5000円 or 5000円以上"`
	// Experience 初心者 drops 辛口 sakes and sakes priced at premiumPrice or more.
	// The earlier service only applied the 辛口 rule; its price check never matched.
	Experience string `json:"experience,omitempty" doc:"Drinker experience; 初心者 excludes dry and premium sakes"`
	Occasion   string `json:"occasion,omitempty" doc:"Accepted for clients, not used for filtering"`
}

// Normalized returns a copy with every field NFKC-folded and trimmed.
func (p Preferences) Normalized() Preferences {
	return Preferences{
		Flavor:     normalize(p.Flavor),
		Sweetness:  normalize(p.Sweetness),
		Acidity:    normalize(p.Acidity),
		Price:      normalize(p.Price),
		Experience: normalize(p.Experience),
		Occasion:   normalize(p.Occasion),
	}
}

// Recommend returns up to MaxRecommendations sakes matching prefs, in
// catalog order.
func Recommend(sakes []Sake, prefs Preferences) []Sake {
	prefs = prefs.Normalized()

	out := make([]Sake, 0, MaxRecommendations)
	for _, s := range sakes {
		if !prefs.matches(s) {
			continue
		}
		out = append(out, s)
		if len(out) == MaxRecommendations {
			break
		}
	}
	return out
}

func (p Preferences) matches(s Sake) bool {
	if p.Flavor != "" && p.Flavor != s.Flavor {
		return false
	}
	if p.Sweetness != "" && p.Sweetness != s.Sweetness {
		return false
	}
	if p.Acidity != "" && p.Acidity != s.Acidity {
		return false
	}
	if p.Price != "" && !inPriceBand(s, p.Price) {
		return false
	}
	if p.Experience == ExperienceNovice {
		if s.Sweetness == dry {
			return false
		}
		if price, ok := s.PriceYen(); ok && price >= premiumPrice {
			return false
		}
	}
	return true
}

// inPriceBand reports whether s falls in band. Unknown bands and
// unparsable prices never exclude a sake.
func inPriceBand(s Sake, band string) bool {
	price, ok := s.PriceYen()
	if !ok {
		return true
	}

	switch band {
	case PriceUnder1000:
		return price <= 1000
	case Price1000To3000:
		return price >= 1000 && price <= 3000
	case Price3000To5000:
		return price >= 3000 && price <= 5000
	case PriceOver5000:
		return price >= 5000
	default:
		return true
	}
}

// PriceBands lists the recognised price bands in ascending order.
func PriceBands() []string {
	return []string{PriceUnder1000, Price1000To3000, Price3000To5000, PriceOver5000}
}
