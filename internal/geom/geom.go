// Package geom provides the 2D primitives shared by the tiling and painting
// code:
// - Point arithmetic and vector operations
// - Polar construction and orientation predicates
// - The frame being filled and uniform sampling inside it
package geom

import (
	"fmt"
	"math"
)

// Point represents a 2D point or vector in Cartesian coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func MakePoint(x, y float64) Point { return Point{X: x, Y: y} }

// Polar constructs the vector of the given length at an angle measured in
// degrees counterclockwise from the x-axis.
func Polar(degrees, radius float64) Point {
	a := Radians(degrees)
	return Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
}

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 { return degrees * math.Pi / 180 }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) ScaleInt(s int) Point  { return p.Scale(float64(s)) }

func Dot(p, q Point) float64 { return p.X*q.X + p.Y*q.Y }

// DotSelf returns the squared length of the vector.
func (p Point) DotSelf() float64 { return p.X*p.X + p.Y*p.Y }

func Dist(p, q Point) float64 { return math.Sqrt(p.Sub(q).DotSelf()) }

// Key identifies a lattice site by its coordinates rounded to 1/100 of a
// unit, so that positions reached through independent floating point paths
// land on the same entry. It exists for the tiler's visited set only;
// geometric predicates must compare exact coordinates.
type Key struct {
	X int32
	Y int32
}

// Round returns the visited-set key for p.
func (p Point) Round() Key {
	return Key{X: int32(math.Round(p.X * 100)), Y: int32(math.Round(p.Y * 100))}
}

// CrossSign reports whether the triangle (p, a, b) winds counterclockwise,
// i.e. whether cross(a-p, b-p) is strictly positive.
func CrossSign(p, a, b Point) bool {
	u := a.Sub(p)
	v := b.Sub(p)
	return u.X*v.Y-u.Y*v.X > 0
}

// RayIntersect returns the intersection of two rays, each given by an origin
// and a direction in degrees. Returns an error when the directions are
// parallel (the rays never meet, or meet everywhere).
func RayIntersect(p1 Point, deg1 float64, p2 Point, deg2 float64) (Point, error) {
	d1 := Polar(deg1, 1)
	d2 := Polar(deg2, 1)
	det := d2.X*d1.Y - d2.Y*d1.X
	if math.Abs(det) < 1e-9 {
		return Point{}, fmt.Errorf("parallel rays (%.1f° and %.1f°) do not intersect", deg1, deg2)
	}
	w := p2.Sub(p1)
	t := (d2.X*w.Y - d2.Y*w.X) / det
	return p1.Add(d1.Scale(t)), nil
}
