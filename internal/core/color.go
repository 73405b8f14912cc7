package core

// Color is a foreground color for a screen cell, mapped to ANSI 256-color
// codes by the platform renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorDim
	ColorBlue   // Player one paddle
	ColorGreen  // Player two paddle
	ColorRed    // CPU paddle
	ColorAccent // Title glow, net, menu highlights
	ColorYellow // Menu options
	ColorFadeHigh
	ColorFadeMid
	ColorFadeLow
)

// Fade maps a [0, 1] alpha fraction onto the dimming color ramp, used for
// particles as they burn out.
func Fade(alpha float64) Color {
	switch {
	case alpha > 0.66:
		return ColorFadeHigh
	case alpha > 0.33:
		return ColorFadeMid
	default:
		return ColorFadeLow
	}
}
