package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolar(t *testing.T) {
	p := Polar(0, 5)
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	p = Polar(90, 2)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 2, p.Y, 1e-9)

	p = Polar(180, 1)
	assert.InDelta(t, -1, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestPointOps(t *testing.T) {
	p := MakePoint(1, 2)
	q := MakePoint(3, -4)
	assert.Equal(t, MakePoint(4, -2), p.Add(q))
	assert.Equal(t, MakePoint(-2, 6), p.Sub(q))
	assert.Equal(t, MakePoint(2, 4), p.Scale(2))
	assert.Equal(t, MakePoint(-3, -6), p.ScaleInt(-3))
	assert.Equal(t, 3.0-8.0, Dot(p, q))
	assert.Equal(t, 25.0, q.DotSelf())
	assert.InDelta(t, 5, Dist(MakePoint(0, 0), MakePoint(3, 4)), 1e-9)
}

func TestRoundKeyMergesNearbyPoints(t *testing.T) {
	// Two ways of reaching the same lattice site accumulate different
	// floating point error but must map to one key.
	step := Polar(30, 10)
	a := MakePoint(0, 0)
	for i := 0; i < 7; i++ {
		a = a.Add(step)
	}
	b := step.Scale(7)
	require.Equal(t, a.Round(), b.Round())

	// Distinct sites stay distinct.
	assert.NotEqual(t, a.Round(), a.Add(step).Round())
}

func TestRoundKeyPrecision(t *testing.T) {
	assert.Equal(t, MakePoint(1.0, 1.0).Round(), MakePoint(1.001, 0.999).Round())
	assert.NotEqual(t, MakePoint(1.0, 1.0).Round(), MakePoint(1.02, 1.0).Round())
}

func TestCrossSign(t *testing.T) {
	// Counterclockwise turn.
	assert.True(t, CrossSign(MakePoint(0, 0), MakePoint(1, 0), MakePoint(0, 1)))
	// Clockwise turn.
	assert.False(t, CrossSign(MakePoint(0, 0), MakePoint(0, 1), MakePoint(1, 0)))
	// Collinear is not strictly positive.
	assert.False(t, CrossSign(MakePoint(0, 0), MakePoint(1, 1), MakePoint(2, 2)))
}

func TestRayIntersect(t *testing.T) {
	// X axis from origin meets a vertical ray through (3, -1) at (3, 0).
	p, err := RayIntersect(MakePoint(0, 0), 0, MakePoint(3, -1), 90)
	require.NoError(t, err)
	assert.InDelta(t, 3, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	// 45° rays from (0,0) and (1,0) never meet.
	_, err = RayIntersect(MakePoint(0, 0), 45, MakePoint(1, 0), 45)
	assert.Error(t, err)

	// Anti-parallel directions are parallel too.
	_, err = RayIntersect(MakePoint(0, 0), 30, MakePoint(1, 0), 210)
	assert.Error(t, err)
}

func TestRayIntersectOblique(t *testing.T) {
	p, err := RayIntersect(MakePoint(0, 0), 45, MakePoint(4, 0), 135)
	require.NoError(t, err)
	assert.InDelta(t, 2, p.X, 1e-9)
	assert.InDelta(t, 2, p.Y, 1e-9)
	assert.InDelta(t, math.Sqrt2*2, Dist(MakePoint(0, 0), p), 1e-9)
}
