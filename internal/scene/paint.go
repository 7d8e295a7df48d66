package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tiledrift/wallgen/internal/geom"
)

// Pattern selects one of the region placement recipes. Every recipe builds
// its regions from the same primitive constructors; they differ only in how
// many regions are created and how their parameters are correlated.
type Pattern int

const (
	FreeCircles Pattern = iota
	FreeTriangles
	FreeStripes
	FreeSpirals
	ConcentricCircles
	ParallelStripes
	CrossedStripes
	ParallelWaves
)

var patternNames = map[Pattern]string{
	FreeCircles:       "free-circles",
	FreeTriangles:     "free-triangles",
	FreeStripes:       "free-stripes",
	FreeSpirals:       "free-spirals",
	ConcentricCircles: "concentric-circles",
	ParallelStripes:   "parallel-stripes",
	CrossedStripes:    "crossed-stripes",
	ParallelWaves:     "waves",
}

func (p Pattern) String() string {
	if s, ok := patternNames[p]; ok {
		return s
	}
	return fmt.Sprintf("pattern(%d)", int(p))
}

// Patterns lists every placement recipe.
func Patterns() []Pattern {
	return []Pattern{
		FreeCircles, FreeTriangles, FreeStripes, FreeSpirals,
		ConcentricCircles, ParallelStripes, CrossedStripes, ParallelWaves,
	}
}

// Options carries the placement parameters shared by the recipes.
type Options struct {
	Frame     geom.Frame
	Count     int     // number of regions to place
	BandWidth float64 // band width for stripes, spirals and waves
	StripeVar int     // angular jitter for parallel stripe directions, degrees
	Color     func(*rand.Rand) ColorItem
}

// Paint realizes a pattern into an ordered region stack. Earlier regions
// occlude later ones wherever they overlap.
func Paint(pattern Pattern, rng *rand.Rand, o Options) ([]Region, error) {
	if o.Count < 1 {
		o.Count = 1
	}
	switch pattern {
	case FreeCircles:
		return freeCircles(rng, o), nil
	case FreeTriangles:
		return freeTriangles(rng, o), nil
	case FreeStripes:
		return freeStripes(rng, o), nil
	case FreeSpirals:
		return freeSpirals(rng, o), nil
	case ConcentricCircles:
		return concentricCircles(rng, o), nil
	case ParallelStripes:
		return parallelStripes(rng, o), nil
	case CrossedStripes:
		return crossedStripes(rng, o), nil
	case ParallelWaves:
		return parallelWaves(rng, o), nil
	default:
		return nil, fmt.Errorf("unknown pattern %v", pattern)
	}
}

// freeCircles scatters discs with growing size hints: small discs first in
// scan order so the large ones don't occlude them everywhere.
func freeCircles(rng *rand.Rand, o Options) []Region {
	regions := make([]Region, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		hint := 0.1 + 0.4*float64(i+1)/float64(o.Count)
		regions = append(regions, RandomDisc(rng, o.Frame, o.Color(rng), hint))
	}
	return regions
}

func freeTriangles(rng *rand.Rand, o Options) []Region {
	regions := make([]Region, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		hint := 0.15 + 0.5*float64(i+1)/float64(o.Count)
		circ := RandomDisc(rng, o.Frame, o.Color(rng), hint)
		regions = append(regions, RandomTriangle(rng, circ))
	}
	return regions
}

func freeStripes(rng *rand.Rand, o Options) []Region {
	regions := make([]Region, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		regions = append(regions, RandomStripe(rng, o.Frame, o.Color(rng), o.BandWidth))
	}
	return regions
}

func freeSpirals(rng *rand.Rand, o Options) []Region {
	regions := make([]Region, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		regions = append(regions, RandomSpiral(rng, o.Frame, o.Color(rng), o.BandWidth))
	}
	return regions
}

// concentricCircles shares one center across all discs, radii increasing.
// Smallest first: with first-match-wins ordering every ring stays visible.
func concentricCircles(rng *rand.Rand, o Options) []Region {
	center := o.Frame.Random(rng)
	maxRadius := (0.5 + rng.Float64()*0.5) * o.Frame.MinDim()
	regions := make([]Region, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		regions = append(regions, Disc{
			Center: center,
			Radius: maxRadius * float64(i+1) / float64(o.Count),
			Color:  o.Color(rng),
		})
	}
	return regions
}

// parallelStripes marches half-plane limits across the frame along one
// shared direction, nearest first. A point is claimed by the first limit it
// falls behind, cutting the frame into bands; StripeVar tilts each boundary
// a few degrees for a hand-drawn look.
func parallelStripes(rng *rand.Rand, o Options) []Region {
	theta := rng.Intn(360)
	return stripeSeries(rng, o, theta, o.Count)
}

// crossedStripes interleaves two perpendicular parallel series. Occlusion
// alternates between the two axes as the scan proceeds.
func crossedStripes(rng *rand.Rand, o Options) []Region {
	theta := rng.Intn(360)
	first := stripeSeries(rng, o, theta, (o.Count+1)/2)
	second := stripeSeries(rng, o, theta+90, o.Count/2)
	regions := make([]Region, 0, o.Count)
	for i := 0; i < len(first) || i < len(second); i++ {
		if i < len(first) {
			regions = append(regions, first[i])
		}
		if i < len(second) {
			regions = append(regions, second[i])
		}
	}
	return regions
}

func stripeSeries(rng *rand.Rand, o Options, theta, n int) []Region {
	if n < 1 {
		n = 1
	}
	center := o.Frame.Center()
	span := math.Sqrt(o.Frame.W*o.Frame.W + o.Frame.H*o.Frame.H)
	step := span / float64(n)
	dir := geom.Polar(float64(theta), 1)
	regions := make([]Region, 0, n)
	for i := 0; i < n; i++ {
		limit := center.Add(dir.Scale(-span/2 + step*float64(i+1)))
		regions = append(regions, RandomHalfPlane(rng, limit, theta, o.StripeVar, o.Color(rng)))
	}
	return regions
}

// parallelWaves spaces finite-width bands along a shared direction, with
// background showing through the gaps. Each band's own direction jitters
// within StripeVar degrees, so the bands undulate instead of lining up.
func parallelWaves(rng *rand.Rand, o Options) []Region {
	theta := rng.Intn(360)
	center := o.Frame.Center()
	span := math.Sqrt(o.Frame.W*o.Frame.W + o.Frame.H*o.Frame.H)
	step := span / float64(o.Count)
	dir := geom.Polar(float64(theta), 1)
	regions := make([]Region, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		angle := theta
		if o.StripeVar > 0 {
			angle = theta - o.StripeVar + rng.Intn(2*o.StripeVar)
		}
		limit := center.Add(dir.Scale(-span/2 + step*(float64(i)+0.5)))
		regions = append(regions, Stripe{
			Limit:     limit,
			Reference: limit.Add(geom.Polar(float64(angle), o.BandWidth)),
			Color:     o.Color(rng),
		})
	}
	return regions
}
