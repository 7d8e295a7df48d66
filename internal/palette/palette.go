// Package palette implements the color model for scene painting: random
// shade generation, bounded per-channel variation, and weighted blending
// toward a theme color.
package palette

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a flat 8-bit RGB fill color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func MakeColor(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Random returns a random shade. Drawing in HSV space with bounded
// saturation and value keeps the result away from muddy grays.
func Random(rng *rand.Rand) Color {
	c := colorful.Hsv(rng.Float64()*360, 0.25+rng.Float64()*0.75, 0.25+rng.Float64()*0.75)
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}

// Variate shifts every channel by an independent uniform amount in
// [-deviation, +deviation], clamped to the valid range.
func (c Color) Variate(rng *rand.Rand, deviation int) Color {
	if deviation <= 0 {
		return c
	}
	jitter := func(v uint8) uint8 {
		d := rng.Intn(2*deviation+1) - deviation
		return uint8(clamp(int(v)+d, 0, 255))
	}
	return Color{R: jitter(c.R), G: jitter(c.G), B: jitter(c.B)}
}

// Meanpoint pulls c toward theme by an integer weight: each channel becomes
// (c + theme*weight) / (1 + weight). Weight 0 returns c unchanged; large
// weights converge to the theme.
func (c Color) Meanpoint(theme Color, weight int) Color {
	if weight <= 0 {
		return c
	}
	mix := func(a, b uint8) uint8 {
		return uint8((int(a) + int(b)*weight) / (1 + weight))
	}
	return Color{R: mix(c.R, theme.R), G: mix(c.G, theme.G), B: mix(c.B, theme.B)}
}

// Hex renders the color as an SVG-friendly #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a #rrggbb (or short #rgb) string.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}
