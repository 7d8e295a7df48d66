// Package scene implements the stochastic coloring model: a background
// shade plus an ordered stack of geometric paint regions, each of which can
// claim a sample point and contribute a randomly drawn color. Region order
// is significant: the first region containing a point wins.
package scene

import (
	"math/rand"

	"github.com/tiledrift/wallgen/internal/geom"
	"github.com/tiledrift/wallgen/internal/palette"
)

// ColorItem bundles a base shade with its sampling parameters. Sampling is
// stateless: every call draws a fresh variation of the shade and blends it
// toward the theme color by the configured weight.
type ColorItem struct {
	Shade     palette.Color `json:"shade"`
	Deviation int           `json:"deviation"`
	Theme     palette.Color `json:"theme"`
	Weight    int           `json:"weight"`
}

// Sample draws one color from the item.
func (ci ColorItem) Sample(rng *rand.Rand) palette.Color {
	return ci.Shade.Variate(rng, ci.Deviation).Meanpoint(ci.Theme, ci.Weight)
}

// Region is the single capability shared by all paint region variants:
// does the point fall inside, and if so, what color does it contribute.
// The color is re-drawn on every call, which is what gives large regions
// their grain instead of a flat fill.
type Region interface {
	Contains(p geom.Point, rng *rand.Rand) (palette.Color, bool)
}

// Scene owns the background and the ordered region stack for one image.
type Scene struct {
	bg      ColorItem
	regions []Region
}

func New(bg ColorItem, regions []Region) *Scene {
	return &Scene{bg: bg, regions: regions}
}

// Color returns the fill color for a sample point: the first region that
// contains the point supplies it, the background otherwise.
func (s *Scene) Color(p geom.Point, rng *rand.Rand) palette.Color {
	for _, r := range s.regions {
		if c, ok := r.Contains(p, rng); ok {
			return c
		}
	}
	return s.bg.Sample(rng)
}

// Background returns the background color item.
func (s *Scene) Background() ColorItem { return s.bg }

// Regions returns the ordered region stack.
func (s *Scene) Regions() []Region { return s.regions }
