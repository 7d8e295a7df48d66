package scene

import (
	"math"
	"math/rand"

	"github.com/tiledrift/wallgen/internal/geom"
	"github.com/tiledrift/wallgen/internal/palette"
)

// Disc claims every point strictly closer to its center than its radius.
type Disc struct {
	Center geom.Point
	Radius float64
	Color  ColorItem
}

// RandomDisc places a disc uniformly in the frame with a radius of
// (rand*sizeHint + 0.1) times the frame's smaller dimension.
func RandomDisc(rng *rand.Rand, f geom.Frame, color ColorItem, sizeHint float64) Disc {
	return Disc{
		Center: f.Random(rng),
		Radius: (rng.Float64()*sizeHint + 0.1) * f.MinDim(),
		Color:  color,
	}
}

func (d Disc) Contains(p geom.Point, rng *rand.Rand) (palette.Color, bool) {
	if d.Center.Sub(p).DotSelf() < d.Radius*d.Radius {
		return d.Color.Sample(rng), true
	}
	return palette.Color{}, false
}

// HalfPlane claims the side of the line through Limit facing away from
// Reference.
type HalfPlane struct {
	Limit     geom.Point
	Reference geom.Point
	Color     ColorItem
}

// RandomHalfPlane anchors a half-plane at limit, with its reference
// direction drawn within ±variance degrees of indic.
func RandomHalfPlane(rng *rand.Rand, limit geom.Point, indic, variance int, color ColorItem) HalfPlane {
	angle := indic
	if variance > 0 {
		angle = indic - variance + rng.Intn(2*variance)
	}
	return HalfPlane{
		Limit:     limit,
		Reference: limit.Add(geom.Polar(float64(angle), 100)),
		Color:     color,
	}
}

func (h HalfPlane) Contains(p geom.Point, rng *rand.Rand) (palette.Color, bool) {
	if geom.Dot(p.Sub(h.Limit), h.Reference.Sub(h.Limit)) < 0 {
		return h.Color.Sample(rng), true
	}
	return palette.Color{}, false
}

// Triangle claims points on the same side of all three edges. The test is
// the orientation-sign formula kept from the original engine: a point is
// contained when the three signs are uniform.
type Triangle struct {
	A     geom.Point
	B     geom.Point
	C     geom.Point
	Color ColorItem
}

// RandomTriangle inscribes a triangle in the given disc: three vertices on
// the circle, consecutive angular gaps of 80 to 150 degrees so the result
// is never too sliver-like.
func RandomTriangle(rng *rand.Rand, d Disc) Triangle {
	theta0 := rng.Intn(360)
	theta1 := 80 + rng.Intn(70)
	theta2 := 80 + rng.Intn(70)
	return Triangle{
		A:     d.Center.Add(geom.Polar(float64(theta0), d.Radius)),
		B:     d.Center.Add(geom.Polar(float64(theta0+theta1), d.Radius)),
		C:     d.Center.Add(geom.Polar(float64(theta0+theta1+theta2), d.Radius)),
		Color: d.Color,
	}
}

func (t Triangle) Contains(p geom.Point, rng *rand.Rand) (palette.Color, bool) {
	d1 := geom.CrossSign(p, t.A, t.B)
	d2 := geom.CrossSign(p, t.B, t.C)
	d3 := geom.CrossSign(p, t.C, t.A)
	hasPos := d1 || d2 || d3
	hasNeg := !(d1 && d2 && d3)
	if !(hasNeg && hasPos) {
		return t.Color.Sample(rng), true
	}
	return palette.Color{}, false
}

// Spiral claims alternating constant-width arms winding around its center.
type Spiral struct {
	Center geom.Point
	Width  float64
	Color  ColorItem
}

func RandomSpiral(rng *rand.Rand, f geom.Frame, color ColorItem, width float64) Spiral {
	return Spiral{Center: f.Random(rng), Width: width, Color: color}
}

func (s Spiral) Contains(p geom.Point, rng *rand.Rand) (palette.Color, bool) {
	d := s.Center.Sub(p)
	theta := math.Atan2(d.X, d.Y)
	// Unwind the angle into the radius so each full turn shifts the bands
	// by one width, producing a two-arm spiral.
	radius := math.Sqrt(d.DotSelf()) + theta/math.Pi*s.Width
	if int(math.Floor(radius/s.Width))%2 == 0 {
		return s.Color.Sample(rng), true
	}
	return palette.Color{}, false
}

// Stripe claims the perpendicular band between Limit and Reference, a
// single finite-width band rather than a half-plane.
type Stripe struct {
	Limit     geom.Point
	Reference geom.Point
	Color     ColorItem
}

func RandomStripe(rng *rand.Rand, f geom.Frame, color ColorItem, width float64) Stripe {
	limit := f.Random(rng)
	return Stripe{
		Limit:     limit,
		Reference: limit.Add(geom.Polar(float64(rng.Intn(360)), width)),
		Color:     color,
	}
}

func (s Stripe) Contains(p geom.Point, rng *rand.Rand) (palette.Color, bool) {
	dot1 := geom.Dot(p.Sub(s.Limit), s.Reference.Sub(s.Limit))
	dot2 := geom.Dot(p.Sub(s.Reference), s.Limit.Sub(s.Reference))
	if dot1 > 0 && dot2 > 0 {
		return s.Color.Sample(rng), true
	}
	return palette.Color{}, false
}
