// Package render provides the software rendering surface orb draws into:
// an RGB framebuffer and a triangle rasterizer with switchable depth
// testing and face culling.
package render

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
	ColorRed   = Color{255, 0, 0}
	ColorGreen = Color{0, 255, 0}
	ColorBlue  = Color{0, 0, 255}
)

// RGB creates a color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// FromRGBA converts 0-1 range components to a Color, clamping out-of-range
// values. The alpha component is dropped: the framebuffer is opaque.
func FromRGBA(r, g, b, _ float64) Color {
	return Color{channel(r), channel(g), channel(b)}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// MultiplyColor scales a color by intensity, clamping at 255.
func MultiplyColor(c Color, intensity float64) Color {
	return Color{
		mulChannel(c.R, intensity),
		mulChannel(c.G, intensity),
		mulChannel(c.B, intensity),
	}
}

func mulChannel(c uint8, intensity float64) uint8 {
	v := float64(c) * intensity
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
