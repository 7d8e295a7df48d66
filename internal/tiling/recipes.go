package tiling

import (
	"math"

	"github.com/tiledrift/wallgen/internal/geom"
)

// The recipes below are pure parameterizations of PeriodicGridTiling: each
// derives the lattice basis from a cell size and a run-wide rotation drawn
// by the caller, builds its templates once, and renders them at fixed
// offsets from every lattice site.

// Hexagons tiles the frame with regular hexagons of circumradius size.
func Hexagons(f geom.Frame, size, rot float64) ([]Tile, error) {
	spacing := 2 * size * math.Cos(geom.Radians(30))
	idir := geom.Polar(rot-30, spacing)
	jdir := geom.Polar(rot+30, spacing)
	m := Hexagon(size, rot)
	return PeriodicGridTiling(f, func(p geom.Point) []Tile {
		return []Tile{m.Render(p)}
	}, idir, jdir)
}

// Triangles tiles the frame with equilateral triangles, two per lattice
// site: one upright and one half-turned, offset to interlock.
func Triangles(f geom.Frame, size, rot float64) ([]Tile, error) {
	spacing := 2 * size * math.Cos(geom.Radians(30))
	idir := geom.Polar(rot-30, spacing)
	jdir := geom.Polar(rot+30, spacing)
	adjust := geom.Polar(rot+60, size*math.Sin(geom.Radians(30))).Add(idir.Scale(0.5))
	m1 := Triangle(size, rot+60)
	m2 := Triangle(size, rot)
	return PeriodicGridTiling(f, func(p geom.Point) []Tile {
		return []Tile{m1.Render(p), m2.Render(p.Add(adjust))}
	}, idir, jdir)
}

// HexagonsAndTriangles tiles the frame with hexagons whose gaps are filled
// by two small triangles per site.
func HexagonsAndTriangles(f geom.Frame, size, rot float64) ([]Tile, error) {
	idir := geom.Polar(rot, size*2)
	jdir := geom.Polar(rot+60, size*2)
	adjust := geom.Polar(rot+30, size/math.Cos(geom.Radians(30)))
	hex := Hexagon(size, rot)
	up := Triangle(size*math.Sin(geom.Radians(30)), rot+30)
	down := Triangle(size*math.Sin(geom.Radians(30)), rot+90)
	return PeriodicGridTiling(f, func(p geom.Point) []Tile {
		return []Tile{
			hex.Render(p),
			up.Render(p.Add(adjust)),
			down.Render(p.Sub(adjust)),
		}
	}, idir, jdir)
}

// SquaresAndTriangles tiles the frame with the snub-square-like arrangement
// of three square orientations and four triangle orientations.
//
//	+---------------+,
//	|            ,' |,'-,
//	|          x'   | 'c '-,
//	|        ,'     |   ',  '-,
//	|       +---a---|--b--+    :-
//	|               |       ,-'
//	|               |    ,-'
//	|               | ,-'
//	+---------------+'
func SquaresAndTriangles(f geom.Frame, size, rot float64) ([]Tile, error) {
	a := size / math.Sqrt2
	b := a * math.Tan(geom.Radians(30))
	c := a / math.Cos(geom.Radians(30))
	period := c + 2*a + 2*b
	idir := geom.Polar(rot, period).Add(geom.Polar(rot+60, period))
	jdir := geom.Polar(rot, period).Add(geom.Polar(rot-60, period))
	mv := [7]Movable{
		Square(size, rot),
		Square(size, rot+60),
		Square(size, rot-60),
		Triangle(c, rot+60),
		Triangle(c, rot),
		Triangle(c, rot+90),
		Triangle(c, rot+30),
	}
	return PeriodicGridTiling(f, func(pos geom.Point) []Tile {
		items := []Tile{
			mv[4].Render(pos.Add(geom.Polar(rot, period))),
			mv[3].Render(pos.Sub(geom.Polar(rot, period))),
		}
		for i := 0; i < 6; i++ {
			ang := rot + float64(i)*60
			items = append(items,
				mv[3+i%2].Render(pos.Add(geom.Polar(ang, c))),
				mv[i%3].Render(pos.Add(geom.Polar(ang, c+b+a))),
				mv[5+i%2].Render(pos.Add(geom.Polar(ang+30, 2*a+c))),
			)
		}
		return items
	}, idir, jdir)
}

// Rhombi tiles the frame with rhombi in a diamond checkerboard.
func Rhombi(f geom.Frame, ldiag, sdiag, rot float64) ([]Tile, error) {
	idir := geom.Polar(rot, ldiag).Add(geom.Polar(rot+90, sdiag))
	jdir := geom.Polar(rot, -ldiag).Add(geom.Polar(rot+90, sdiag))
	m := Rhombus(ldiag, sdiag, rot)
	return PeriodicGridTiling(f, func(p geom.Point) []Tile {
		return []Tile{m.Render(p)}
	}, idir, jdir)
}

// Pentagons tiles the frame with pairs of type-1 pentagons. The second
// basis vector steps perpendicular to the first by the rendered pair's
// extent, so consecutive rows stack without leaving uncovered strips.
func Pentagons(f geom.Frame, size, rot float64) ([]Tile, error) {
	m, err := Pentagon(size, rot)
	if err != nil {
		return nil, err
	}
	idir := geom.Polar(rot, size)
	perp := geom.Polar(rot+90, 1)
	jdir := perp.Scale(m.Extent(perp))
	return PeriodicGridTiling(f, func(p geom.Point) []Tile {
		return []Tile{
			m.Render(p.Add(geom.Polar(rot, size))),
			m.Render(p.Add(geom.Polar(rot+180, size))),
		}
	}, idir, jdir)
}
