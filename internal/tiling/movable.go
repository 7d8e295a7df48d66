// Package tiling produces the tessellations covering a frame: periodic
// lattice tilings assembled from movable polygon templates, and an
// aperiodic Delaunay triangulation of randomly scattered points.
package tiling

import (
	"fmt"
	"math"

	"github.com/tiledrift/wallgen/internal/geom"
)

// Tile is one emitted cell: a closed polygon path plus the representative
// point used to query the scene for the cell's fill color.
type Tile struct {
	Center geom.Point
	Path   []geom.Point
}

// Movable is a polygon template: vertex offsets from a local centroid,
// pre-rotated for a fixed orientation. Templates are immutable; many
// placements share one template.
type Movable struct {
	offsets []geom.Point
}

func MakeMovable(offsets []geom.Point) Movable { return Movable{offsets: offsets} }

// Render binds the template to an absolute position, preserving the
// template's vertex order.
func (m Movable) Render(p geom.Point) Tile {
	path := make([]geom.Point, len(m.offsets))
	for i, off := range m.offsets {
		path[i] = p.Add(off)
	}
	return Tile{Center: p, Path: path}
}

// Extent returns the template's projected span along the unit direction u.
func (m Movable) Extent(u geom.Point) float64 {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, off := range m.offsets {
		d := geom.Dot(off, u)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	if lo > hi {
		return 0
	}
	return hi - lo
}

// Hexagon builds a regular hexagon of circumradius size, rotated by rot
// degrees.
func Hexagon(size, rot float64) Movable {
	offsets := make([]geom.Point, 6)
	for i := range offsets {
		offsets[i] = geom.Polar(rot+float64(i)*60, size)
	}
	return MakeMovable(offsets)
}

// Triangle builds an equilateral triangle of circumradius size, rotated by
// rot degrees.
func Triangle(size, rot float64) Movable {
	offsets := make([]geom.Point, 3)
	for i := range offsets {
		offsets[i] = geom.Polar(rot+float64(i)*120, size)
	}
	return MakeMovable(offsets)
}

// Square builds a square of circumradius size, rotated by rot degrees.
func Square(size, rot float64) Movable {
	offsets := make([]geom.Point, 4)
	for i := range offsets {
		offsets[i] = geom.Polar(rot+45+float64(i)*90, size)
	}
	return MakeMovable(offsets)
}

// Rhombus builds a rhombus with the given diagonals along rot and rot+90.
func Rhombus(ldiag, sdiag, rot float64) Movable {
	return MakeMovable([]geom.Point{
		geom.Polar(rot, ldiag),
		geom.Polar(rot+90, sdiag),
		geom.Polar(rot+180, ldiag),
		geom.Polar(rot+270, sdiag),
	})
}

// Angles of the type-1 irregular pentagon, in degrees. The fifth vertex is
// not placed directly: it falls out of intersecting the rays extending the
// two edges adjacent to it.
const (
	pentagonAlpha   = 130
	pentagonBeta    = 110
	pentagonGamma   = 180 - pentagonBeta
	pentagonDelta   = 110
	pentagonEpsilon = 360 - pentagonAlpha - pentagonDelta
)

// Pentagon builds the type-1 irregular pentagon of characteristic size,
// rotated by rot degrees and centered on its own centroid.
func Pentagon(size, rot float64) (Movable, error) {
	sizes := [3]float64{size, size * 0.2, size * 1.1}

	a := geom.MakePoint(0, 0)
	b := a.Add(geom.Polar(rot, sizes[1]))
	c := b.Add(geom.Polar(rot+pentagonBeta, sizes[2]))
	e := a.Add(geom.Polar(rot-pentagonAlpha, sizes[0]))
	d, err := geom.RayIntersect(
		e, rot-pentagonAlpha-pentagonEpsilon,
		c, rot+pentagonBeta+pentagonGamma,
	)
	if err != nil {
		return Movable{}, fmt.Errorf("pentagon fifth vertex: %w", err)
	}

	mid := a.Add(b).Add(c).Add(d).Add(e).Scale(0.2)
	return MakeMovable([]geom.Point{
		a.Sub(mid), b.Sub(mid), c.Sub(mid), d.Sub(mid), e.Sub(mid),
	}), nil
}
