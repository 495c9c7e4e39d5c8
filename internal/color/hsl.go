package color

import "math"

// HSL is a hue/saturation/lightness view of a Color.
// H is in degrees [0,360), S and L are in [0,1].
type HSL struct {
	H, S, L float64
}

// HSL converts the colour using the min/max channel decomposition.
func (c Color) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxv := math.Max(r, math.Max(g, b))
	minv := math.Min(r, math.Min(g, b))
	l := (maxv + minv) / 2

	// Achromatic
	if maxv == minv {
		return HSL{H: 0, S: 0, L: l}
	}

	d := maxv - minv
	var s float64
	if l > 0.5 {
		s = d / (2 - maxv - minv)
	} else {
		s = d / (maxv + minv)
	}

	var h float64
	switch maxv {
	case r:
		h = 60 * math.Mod((g-b)/d, 6)
	case g:
		h = 60 * ((b-r)/d + 2)
	default:
		h = 60 * ((r-g)/d + 4)
	}

	return HSL{H: normalizeHue(h), S: s, L: l}
}

// Color converts back to RGB. Hue outside [0,360) is wrapped first.
func (h HSL) Color() Color {
	hue := normalizeHue(h.H)

	c := (1 - math.Abs(2*h.L-1)) * h.S
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := h.L - c/2

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{
		R: toChannel(r + m),
		G: toChannel(g + m),
		B: toChannel(b + m),
	}
}

// normalizeHue wraps degrees into [0,360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -0 and values that round up to 360 after the add.
	if h >= 360 || h == 0 {
		return 0
	}
	return h
}

// toChannel scales a [0,1] component to a rounded, clamped 8-bit channel.
func toChannel(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
