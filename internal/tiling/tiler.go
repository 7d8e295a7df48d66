package tiling

import (
	"fmt"
	"math"

	"github.com/tiledrift/wallgen/internal/geom"
)

// maxSites caps the flood fill; a correctly parameterized lattice saturates
// the frame long before reaching it, so hitting the cap means the basis
// vectors are wrong for the frame.
const maxSites = 1 << 20

// Generator maps a lattice site to the tiles anchored there. It may emit
// zero or more tiles per site; hybrid tilings place several shapes around
// each site.
type Generator func(geom.Point) []Tile

// PeriodicGridTiling covers the frame with the lattice spanned by idir and
// jdir, flood-filling outward from the frame center and invoking gen at
// every in-frame site. Sites are deduplicated by rounded position, marked
// visited on enqueue so no site is pushed twice. Out-of-frame sites are
// discarded without expanding their neighbors, which bounds the exploration
// to the frame's interior plus a one-site ring.
//
// The basis vectors must be linearly independent; adjacency in image space
// is encoded entirely in their choice, the traversal itself only knows the
// four grid neighbors.
func PeriodicGridTiling(f geom.Frame, gen Generator, idir, jdir geom.Point) ([]Tile, error) {
	cross := idir.X*jdir.Y - idir.Y*jdir.X
	if math.Abs(cross) <= 1e-9*math.Sqrt(idir.DotSelf()*jdir.DotSelf()) {
		return nil, fmt.Errorf("basis vectors (%g,%g) and (%g,%g) are not linearly independent",
			idir.X, idir.Y, jdir.X, jdir.Y)
	}

	var tiles []Tile
	center := f.Center()
	visited := map[geom.Key]struct{}{center.Round(): {}}
	stack := []geom.Point{center}
	sites := 0
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f.IsInside(pos) {
			continue
		}
		if sites++; sites > maxSites {
			return nil, fmt.Errorf("flood fill exceeded %d sites, basis (%g,%g)/(%g,%g) is too fine for the frame",
				maxSites, idir.X, idir.Y, jdir.X, jdir.Y)
		}
		tiles = append(tiles, gen(pos)...)
		for _, step := range [4]geom.Point{idir, idir.Scale(-1), jdir, jdir.Scale(-1)} {
			next := pos.Add(step)
			key := next.Round()
			if _, ok := visited[key]; ok {
				continue
			}
			visited[key] = struct{}{}
			stack = append(stack, next)
		}
	}
	return tiles, nil
}
