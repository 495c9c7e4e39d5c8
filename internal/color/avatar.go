package color

// Avatar colours share one saturation and lightness so that only hue varies.
const (
	avatarSaturation = 0.4
	avatarLightness  = 0.65
)

// ForUser returns a stable hex colour for a user ID.
// The same ID always hashes to the same hue.
func ForUser(userID string) string {
	h := 0
	for _, c := range userID {
		h = 31*h + int(c)
	}
	if h < 0 {
		h = -h
	}
	// -MinInt is still negative.
	if h < 0 {
		h = 0
	}

	return HSL{H: float64(h % 360), S: avatarSaturation, L: avatarLightness}.Color().Hex()
}
