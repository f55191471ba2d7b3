package board

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// Predefined colors.
var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Red         = Color{R: 1, A: 1}
	Green       = Color{G: 1, A: 1}
	Blue        = Color{B: 1, A: 1}
	Yellow      = Color{R: 1, G: 1, A: 1}
	Cyan        = Color{G: 1, B: 1, A: 1}
	Magenta     = Color{R: 1, B: 1, A: 1}
	Gray        = Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
)

// RGB creates an opaque color from RGB components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components in [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// HSV creates an opaque color from hue (degrees in [0, 360)), saturation
// and value in [0, 1].
func HSV(h, s, v float64) Color {
	c := colorful.Hsv(h, s, v)
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// HSV returns the hue (degrees), saturation and value of the color.
// The alpha component is ignored.
func (c Color) HSV() (h, s, v float64) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
}

// Hex parses a color from a hex string of the form "#RGB", "#RGBA",
// "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional). An invalid
// string logs a warning and yields black.
func Hex(hex string) Color {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint8
	a := uint8(255)
	var err error
	switch len(s) {
	case 3:
		_, err = fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		_, err = fmt.Sscanf(s, "%1x%1x%1x%1x", &r, &g, &b, &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		err = fmt.Errorf("board: hex color %q has invalid length", hex)
	}
	if err != nil {
		Logger().Warn("invalid hex color", "value", hex, "err", err)
		return Black
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// HexString returns the "#RRGGBB" representation of the color, dropping
// alpha.
func (c Color) HexString() string {
	return colorful.Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}.Hex()
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// Visible reports whether drawing with the color has any effect.
func (c Color) Visible() bool {
	return c.A > 0
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
