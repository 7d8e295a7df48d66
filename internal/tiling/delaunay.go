package tiling

import (
	"fmt"
	"math/rand"

	"github.com/fogleman/delaunay"

	"github.com/tiledrift/wallgen/internal/geom"
)

// Triangulate computes the Delaunay triangulation of a point set and emits
// one tile per triangle, with the exact centroid as representative point.
// The triangulation is delegated to a dedicated library behind this narrow
// conversion layer; degenerate input (fewer than 3 points, or all points
// collinear) surfaces as an error rather than an empty tiling.
func Triangulate(pts []geom.Point) ([]Tile, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("triangulation needs at least 3 points, got %d", len(pts))
	}

	dpts := make([]delaunay.Point, len(pts))
	for i, p := range pts {
		dpts[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	tri, err := delaunay.Triangulate(dpts)
	if err != nil {
		return nil, fmt.Errorf("triangulating %d points: %w", len(pts), err)
	}
	if len(tri.Triangles)%3 != 0 {
		return nil, fmt.Errorf("invalid triangle index count %d, not divisible by 3", len(tri.Triangles))
	}
	if len(tri.Triangles) == 0 {
		return nil, fmt.Errorf("degenerate input: %d points produced no triangles", len(pts))
	}

	tiles := make([]Tile, 0, len(tri.Triangles)/3)
	for i := 0; i < len(tri.Triangles); i += 3 {
		a := pts[tri.Triangles[i]]
		b := pts[tri.Triangles[i+1]]
		c := pts[tri.Triangles[i+2]]
		tiles = append(tiles, Tile{
			Center: a.Add(b).Add(c).Scale(1.0 / 3.0),
			Path:   []geom.Point{a, b, c},
		})
	}
	return tiles, nil
}

// Delaunay scatters n uniformly random points inside the frame and emits
// their triangulation. Unlike the periodic recipes the result is aperiodic;
// the triangles cover the scattered points' convex hull rather than the
// whole frame.
func Delaunay(f geom.Frame, rng *rand.Rand, n int) ([]Tile, error) {
	if n < 3 {
		return nil, fmt.Errorf("delaunay tiling needs at least 3 points, got %d", n)
	}
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = f.Random(rng)
	}
	return Triangulate(pts)
}
