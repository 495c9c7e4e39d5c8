package color

import (
	"strings"

	domainerrors "github.com/iroha-labs/palette-server/internal/errors"
)

// DefaultAngle is the analogous offset used when none is given.
const DefaultAngle = 30

// Kind is a palette relation.
type Kind int

// Relations in the order they are emitted.
const (
	KindComplementary Kind = iota
	KindAnalogous
	KindTriadic
)

// AllKinds lists every relation in emission order.
var AllKinds = []Kind{KindComplementary, KindAnalogous, KindTriadic}

var kindNames = [...]string{
	KindComplementary: "complementary",
	KindAnalogous:     "analogous",
	KindTriadic:       "triadic",
}

// String returns the lowercase relation name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a relation name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, domainerrors.Validationf("unknown palette kind %q (must be complementary, analogous, or triadic)", s)
}

// ParseKinds resolves a list of relation names. Duplicates are kept out.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		if !containsKind(kinds, k) {
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// PaletteRequest describes which relations to derive from Base.
//
// An empty Kinds selects every relation. Angle is used as-is for the
// analogous pair, so a zero-value request rotates by 0 degrees; use
// NewPaletteRequest to get DefaultAngle.
type PaletteRequest struct {
	Base  Color
	Kinds []Kind
	Angle int
}

// NewPaletteRequest returns a request for base with DefaultAngle.
func NewPaletteRequest(base Color, kinds ...Kind) PaletteRequest {
	return PaletteRequest{Base: base, Kinds: kinds, Angle: DefaultAngle}
}

// Palette is the ordered result of GeneratePalette. The base colour is
// always first.
type Palette []Color

// Hex returns the palette as "#RRGGBB" strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// GeneratePalette derives the requested relations from req.Base.
// Output order is fixed: base, complementary, analogous(+a, -a),
// triadic(+120, -120), regardless of the order of req.Kinds.
func GeneratePalette(req PaletteRequest) Palette {
	kinds := req.Kinds
	if len(kinds) == 0 {
		kinds = AllKinds
	}

	palette := make(Palette, 0, 1+1+2+2)
	palette = append(palette, req.Base)

	if containsKind(kinds, KindComplementary) {
		palette = append(palette, Complementary(req.Base))
	}
	if containsKind(kinds, KindAnalogous) {
		pair := Analogous(req.Base, req.Angle)
		palette = append(palette, pair[0], pair[1])
	}
	if containsKind(kinds, KindTriadic) {
		pair := Triadic(req.Base)
		palette = append(palette, pair[0], pair[1])
	}

	return palette
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, have := range kinds {
		if have == k {
			return true
		}
	}
	return false
}
