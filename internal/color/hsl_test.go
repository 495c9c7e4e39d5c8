package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_HSL(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  HSL
	}{
		{"red", RGB(255, 0, 0), HSL{H: 0, S: 1, L: 0.5}},
		{"green", RGB(0, 255, 0), HSL{H: 120, S: 1, L: 0.5}},
		{"blue", RGB(0, 0, 255), HSL{H: 240, S: 1, L: 0.5}},
		{"magenta wraps negative hue", RGB(255, 0, 255), HSL{H: 300, S: 1, L: 0.5}},
		{"base blue", RGB(59, 130, 246), HSL{H: 217.2193, S: 0.9122, L: 0.5980}},
		{"dark low saturation", RGB(40, 30, 30), HSL{H: 0, S: 0.1429, L: 0.1373}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.color.HSL()
			assert.InDelta(t, tt.want.H, got.H, 0.001)
			assert.InDelta(t, tt.want.S, got.S, 0.001)
			assert.InDelta(t, tt.want.L, got.L, 0.001)
		})
	}
}

func TestColor_HSL_Achromatic(t *testing.T) {
	for _, c := range []Color{RGB(0, 0, 0), RGB(255, 255, 255), RGB(128, 128, 128)} {
		hsl := c.HSL()
		assert.Zero(t, hsl.H, c.Hex())
		assert.Zero(t, hsl.S, c.Hex())
	}

	assert.Zero(t, RGB(0, 0, 0).HSL().L)
	assert.Equal(t, 1.0, RGB(255, 255, 255).HSL().L)
}

func TestColor_HSL_HueRange(t *testing.T) {
	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				hsl := RGB(uint8(r), uint8(g), uint8(b)).HSL()
				assert.GreaterOrEqual(t, hsl.H, 0.0)
				assert.Less(t, hsl.H, 360.0)
				assert.GreaterOrEqual(t, hsl.S, 0.0)
				assert.LessOrEqual(t, hsl.S, 1.0+1e-9)
			}
		}
	}
}

func TestHSL_Color(t *testing.T) {
	tests := []struct {
		name string
		hsl  HSL
		want string
	}{
		{"red", HSL{H: 0, S: 1, L: 0.5}, "#FF0000"},
		{"yellow", HSL{H: 60, S: 1, L: 0.5}, "#FFFF00"},
		{"green", HSL{H: 120, S: 1, L: 0.5}, "#00FF00"},
		{"cyan", HSL{H: 180, S: 1, L: 0.5}, "#00FFFF"},
		{"blue", HSL{H: 240, S: 1, L: 0.5}, "#0000FF"},
		{"magenta", HSL{H: 300, S: 1, L: 0.5}, "#FF00FF"},
		{"grey rounds half up", HSL{H: 0, S: 0, L: 0.5}, "#808080"},
		{"hue 360 wraps to red", HSL{H: 360, S: 1, L: 0.5}, "#FF0000"},
		{"negative hue wraps", HSL{H: -120, S: 1, L: 0.5}, "#0000FF"},
		{"black", HSL{H: 200, S: 0.7, L: 0}, "#000000"},
		{"white", HSL{H: 200, S: 0.7, L: 1}, "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hsl.Color().Hex())
		})
	}
}

func TestHSL_RoundTripWithinOne(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				c := RGB(uint8(r), uint8(g), uint8(b))
				assertWithinOne(t, c, c.HSL().Color())
			}
		}
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{720, 0},
		{-30, 330},
		{-360, 0},
		{450, 90},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, normalizeHue(tt.in), 1e-9, "normalizeHue(%v)", tt.in)
	}
}

func TestToChannel_Clamps(t *testing.T) {
	assert.Equal(t, uint8(0), toChannel(-0.2))
	assert.Equal(t, uint8(255), toChannel(1.3))
	assert.Equal(t, uint8(128), toChannel(0.5))
}

// assertWithinOne fails when any channel differs by more than one unit.
func assertWithinOne(t *testing.T, want, got Color) {
	t.Helper()
	assert.InDelta(t, float64(want.R), float64(got.R), 1, "R of %s vs %s", want.Hex(), got.Hex())
	assert.InDelta(t, float64(want.G), float64(got.G), 1, "G of %s vs %s", want.Hex(), got.Hex())
	assert.InDelta(t, float64(want.B), float64(got.B), 1, "B of %s vs %s", want.Hex(), got.Hex())
}
