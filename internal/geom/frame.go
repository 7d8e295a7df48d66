package geom

import (
	"fmt"
	"math/rand"
)

// Frame is the axis-aligned rectangle being filled, normally anchored at the
// origin. It is built once per generation run and not mutated afterwards.
type Frame struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func MakeFrame(x, y, w, h float64) (Frame, error) {
	if w <= 0 || h <= 0 {
		return Frame{}, fmt.Errorf("frame must have positive dimensions, got %gx%g", w, h)
	}
	return Frame{X: x, Y: y, W: w, H: h}, nil
}

// IsInside reports whether p lies within the frame, boundary included.
func (f Frame) IsInside(p Point) bool {
	return p.X >= f.X && p.X <= f.X+f.W && p.Y >= f.Y && p.Y <= f.Y+f.H
}

// Center returns the frame midpoint. It is always inside a well-formed
// frame, which makes it a valid flood fill seed.
func (f Frame) Center() Point {
	return Point{X: f.X + f.W/2, Y: f.Y + f.H/2}
}

// MinDim returns the smaller of the frame's width and height.
func (f Frame) MinDim() float64 {
	if f.W < f.H {
		return f.W
	}
	return f.H
}

// Random returns a uniformly distributed point inside the frame.
func (f Frame) Random(rng *rand.Rand) Point {
	return Point{X: f.X + rng.Float64()*f.W, Y: f.Y + rng.Float64()*f.H}
}
