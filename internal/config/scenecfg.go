package config

import (
	"fmt"
	"math/rand"

	"github.com/tiledrift/wallgen/internal/geom"
	"github.com/tiledrift/wallgen/internal/palette"
	"github.com/tiledrift/wallgen/internal/scene"
	"github.com/tiledrift/wallgen/internal/tiling"
)

// Tiling selects one of the tessellation recipes.
type Tiling int

const (
	Hexagons Tiling = iota
	Triangles
	HexagonsAndTriangles
	SquaresAndTriangles
	Rhombi
	Pentagons
	Delaunay
)

var tilingNames = map[Tiling]string{
	Hexagons:             "hexagons",
	Triangles:            "triangles",
	HexagonsAndTriangles: "hexagons-and-triangles",
	SquaresAndTriangles:  "squares-and-triangles",
	Rhombi:               "rhombus",
	Pentagons:            "pentagons",
	Delaunay:             "delaunay",
}

func (t Tiling) String() string {
	if s, ok := tilingNames[t]; ok {
		return s
	}
	return fmt.Sprintf("tiling(%d)", int(t))
}

// Tilings lists every tessellation recipe.
func Tilings() []Tiling {
	return []Tiling{
		Hexagons, Triangles, HexagonsAndTriangles,
		SquaresAndTriangles, Rhombi, Pentagons, Delaunay,
	}
}

// SceneCfg holds the fully resolved parameters for one generation run,
// picked from the meta-config for the current time of day.
type SceneCfg struct {
	Theme     Chooser[palette.Color]
	Weight    int
	Deviation int

	Frame   geom.Frame
	Pattern scene.Pattern
	Tiling  Tiling

	PatternCount  int
	StripeVar     int
	PatternWidth  float64
	TilingSize    float64
	DelaunayCount int

	LineColor palette.Color
	LineWidth float64
}

// ChooseColor builds one region color: a fresh random shade pulled toward a
// color drawn from the run's theme. An empty theme degrades to black, which
// with weight 0 means no pull at all.
func (c *SceneCfg) ChooseColor(rng *rand.Rand) scene.ColorItem {
	theme, ok := c.Theme.Choose(rng)
	if !ok {
		theme = palette.MakeColor(0, 0, 0)
	}
	return scene.ColorItem{
		Shade:     palette.Random(rng),
		Deviation: c.Deviation,
		Theme:     theme,
		Weight:    c.Weight,
	}
}

// MakeScene realizes the configured paint pattern into a scene.
func (c *SceneCfg) MakeScene(rng *rand.Rand) (*scene.Scene, error) {
	regions, err := scene.Paint(c.Pattern, rng, scene.Options{
		Frame:     c.Frame,
		Count:     c.PatternCount,
		BandWidth: c.PatternWidth,
		StripeVar: c.StripeVar,
		Color:     c.ChooseColor,
	})
	if err != nil {
		return nil, err
	}
	return scene.New(c.ChooseColor(rng), regions), nil
}

// MakeTiling realizes the configured tessellation. Periodic recipes share a
// single random rotation across all sites of the run.
func (c *SceneCfg) MakeTiling(rng *rand.Rand) ([]tiling.Tile, error) {
	rot := float64(rng.Intn(360))
	switch c.Tiling {
	case Hexagons:
		return tiling.Hexagons(c.Frame, c.TilingSize, rot)
	case Triangles:
		return tiling.Triangles(c.Frame, c.TilingSize, rot)
	case HexagonsAndTriangles:
		return tiling.HexagonsAndTriangles(c.Frame, c.TilingSize, rot)
	case SquaresAndTriangles:
		return tiling.SquaresAndTriangles(c.Frame, c.TilingSize, rot)
	case Rhombi:
		return tiling.Rhombi(c.Frame, c.TilingSize, 0.6*c.TilingSize, rot)
	case Pentagons:
		return tiling.Pentagons(c.Frame, c.TilingSize, rot)
	case Delaunay:
		return tiling.Delaunay(c.Frame, rng, c.DelaunayCount)
	default:
		return nil, fmt.Errorf("unknown tiling %v", c.Tiling)
	}
}
