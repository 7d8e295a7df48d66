package tiling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiledrift/wallgen/internal/geom"
)

func TestRenderTranslatesTemplate(t *testing.T) {
	m := MakeMovable([]geom.Point{
		geom.MakePoint(1, 0), geom.MakePoint(0, 1), geom.MakePoint(-1, -1),
	})
	tile := m.Render(geom.MakePoint(10, 20))
	assert.Equal(t, geom.MakePoint(10, 20), tile.Center)
	// Template order is preserved.
	assert.Equal(t, []geom.Point{
		geom.MakePoint(11, 20), geom.MakePoint(10, 21), geom.MakePoint(9, 19),
	}, tile.Path)
}

func TestRegularTemplatesOnCircumcircle(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    Movable
		n    int
	}{
		{"hexagon", Hexagon(7, 30), 6},
		{"triangle", Triangle(7, 0), 3},
		{"square", Square(7, 123), 4},
	} {
		tile := tc.m.Render(geom.MakePoint(0, 0))
		require.Len(t, tile.Path, tc.n, tc.name)
		for _, v := range tile.Path {
			assert.InDelta(t, 7, math.Sqrt(v.DotSelf()), 1e-9, tc.name)
		}
	}
}

func TestRhombusDiagonals(t *testing.T) {
	tile := Rhombus(10, 4, 0).Render(geom.MakePoint(0, 0))
	require.Len(t, tile.Path, 4)
	assert.InDelta(t, 10, tile.Path[0].X, 1e-9)
	assert.InDelta(t, 4, tile.Path[1].Y, 1e-9)
	assert.InDelta(t, -10, tile.Path[2].X, 1e-9)
	assert.InDelta(t, -4, tile.Path[3].Y, 1e-9)
}

func TestPentagonCenteredOnCentroid(t *testing.T) {
	m, err := Pentagon(10, 42)
	require.NoError(t, err)
	tile := m.Render(geom.MakePoint(0, 0))
	require.Len(t, tile.Path, 5)

	// The template subtracts its own centroid, so vertex offsets sum to
	// zero.
	var sum geom.Point
	for _, v := range tile.Path {
		sum = sum.Add(v)
	}
	assert.InDelta(t, 0, sum.X, 1e-9)
	assert.InDelta(t, 0, sum.Y, 1e-9)
}

func TestPentagonVerticesDistinct(t *testing.T) {
	m, err := Pentagon(10, 0)
	require.NoError(t, err)
	tile := m.Render(geom.MakePoint(0, 0))
	for i := 0; i < len(tile.Path); i++ {
		for j := i + 1; j < len(tile.Path); j++ {
			assert.Greater(t, geom.Dist(tile.Path[i], tile.Path[j]), 0.1,
				"vertices %d and %d coincide", i, j)
		}
	}
}

func TestExtent(t *testing.T) {
	m := MakeMovable([]geom.Point{
		geom.MakePoint(-2, 1), geom.MakePoint(3, -1), geom.MakePoint(0, 5),
	})
	assert.InDelta(t, 5, m.Extent(geom.MakePoint(1, 0)), 1e-9)
	assert.InDelta(t, 6, m.Extent(geom.MakePoint(0, 1)), 1e-9)
	assert.Equal(t, 0.0, MakeMovable(nil).Extent(geom.MakePoint(1, 0)))
}
