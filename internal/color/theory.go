package color

// TriadicAngle is the hue offset between the members of a triad.
const TriadicAngle = 120

// Complementary inverts every channel.
//
// This is not the same as RotateHue(c, 180): the two agree for fully
// saturated colours but drift apart at low saturation, and the palette
// contract is defined on the RGB inversion.
func Complementary(c Color) Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// RotateHue shifts the hue by degrees (any sign, any magnitude) and keeps
// saturation and lightness.
func RotateHue(c Color, degrees int) Color {
	hsl := c.HSL()
	hsl.H = normalizeHue(hsl.H + float64(degrees))
	return hsl.Color()
}

// Analogous returns the two neighbours at +angle and -angle.
func Analogous(c Color, angle int) [2]Color {
	return [2]Color{RotateHue(c, angle), RotateHue(c, -angle)}
}

// Triadic returns the two colours at +120 and -120.
func Triadic(c Color) [2]Color {
	return [2]Color{RotateHue(c, TriadicAngle), RotateHue(c, -TriadicAngle)}
}
