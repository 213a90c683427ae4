package motion

import (
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with components in [0, 1].
// Interpolation blends the RGB channels per-channel in the working
// space and the alpha channel linearly.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// RGBA creates a color from RGBA components in [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RRGGBB", with or without a leading '#'.
func Hex(hex string) Color {
	if hex != "" && hex[0] != '#' {
		hex = "#" + hex
	}
	if len(hex) == 4 {
		// Expand shorthand "#abc" to "#aabbcc".
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{A: 1}
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// Named looks up a color by its SVG 1.1 name (e.g. "rebeccapurple").
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return FromColor(c), true
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// RandomColor returns a random saturated color suitable for
// procedurally spawned objects.
func RandomColor() Color {
	c := colorful.Hsv(rand.Float64()*360, 0.6+0.3*rand.Float64(), 0.75+0.2*rand.Float64())
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Interp blends two colors at the given progress. Progress 0 returns c
// and 1 returns other, exactly.
func (c Color) Interp(other Color, progress float64) Color {
	if progress <= 0 {
		return c
	}
	if progress >= 1 {
		return other
	}
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: other.R, G: other.G, B: other.B}
	blended := a.BlendRgb(b, progress)
	return Color{
		R: blended.R,
		G: blended.G,
		B: blended.B,
		A: c.A + (other.A-c.A)*progress,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors used by the shape builders.
var (
	Black = Color{R: 0, G: 0, B: 0, A: 1}
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Red   = FromColor(colornames.Crimson)
	Green = FromColor(colornames.Mediumseagreen)
	Blue  = FromColor(colornames.Steelblue)
	Gray  = FromColor(colornames.Slategray)
)
