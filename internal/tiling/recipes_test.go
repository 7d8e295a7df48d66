package tiling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiledrift/wallgen/internal/geom"
)

func testFrame() geom.Frame { return geom.Frame{W: 200, H: 150} }

func TestHexagonsCoverFrame(t *testing.T) {
	f := testFrame()
	size := 8.0
	tiles, err := Hexagons(f, size, 0)
	require.NoError(t, err)
	require.NotEmpty(t, tiles)

	for _, tile := range tiles {
		assert.Len(t, tile.Path, 6)
	}

	// No interior point is farther than one circumradius from the nearest
	// placed hexagon: the tiling leaves no gaps wider than a cell.
	for x := 5.0; x < f.W; x += 10 {
		for y := 5.0; y < f.H; y += 10 {
			p := geom.MakePoint(x, y)
			nearest := math.Inf(1)
			for _, tile := range tiles {
				nearest = math.Min(nearest, geom.Dist(p, tile.Center))
			}
			assert.LessOrEqual(t, nearest, 2*size, "gap around (%v,%v)", x, y)
		}
	}
}

func TestHexagonsRotationInvariantCount(t *testing.T) {
	f := testFrame()
	for _, rot := range []float64{0, 33, 90, 217, 359} {
		tiles, err := Hexagons(f, 10, rot)
		require.NoError(t, err, "rot %v", rot)
		assert.NotEmpty(t, tiles, "rot %v", rot)
	}
}

func TestTrianglesEmitsPairs(t *testing.T) {
	tiles, err := Triangles(testFrame(), 10, 15)
	require.NoError(t, err)
	require.NotEmpty(t, tiles)
	assert.Zero(t, len(tiles)%2, "two triangles per lattice site")
	for _, tile := range tiles {
		assert.Len(t, tile.Path, 3)
	}
}

func TestHexagonsAndTrianglesShapes(t *testing.T) {
	tiles, err := HexagonsAndTriangles(testFrame(), 12, 77)
	require.NoError(t, err)
	require.NotEmpty(t, tiles)
	assert.Zero(t, len(tiles)%3, "three shapes per lattice site")

	hexes, tris := 0, 0
	for _, tile := range tiles {
		switch len(tile.Path) {
		case 6:
			hexes++
		case 3:
			tris++
		default:
			t.Fatalf("unexpected %d-gon", len(tile.Path))
		}
	}
	assert.Equal(t, 2*hexes, tris)
}

func TestSquaresAndTrianglesShapes(t *testing.T) {
	tiles, err := SquaresAndTriangles(geom.Frame{W: 400, H: 300}, 12, 5)
	require.NoError(t, err)
	require.NotEmpty(t, tiles)
	assert.Zero(t, len(tiles)%20, "twenty shapes per lattice site")
	for _, tile := range tiles {
		n := len(tile.Path)
		assert.True(t, n == 3 || n == 4, "unexpected %d-gon", n)
	}
}

func TestRhombiShapes(t *testing.T) {
	tiles, err := Rhombi(testFrame(), 15, 8, 40)
	require.NoError(t, err)
	require.NotEmpty(t, tiles)
	for _, tile := range tiles {
		assert.Len(t, tile.Path, 4)
	}
}

func TestPentagonsShapes(t *testing.T) {
	tiles, err := Pentagons(testFrame(), 14, 20)
	require.NoError(t, err)
	require.NotEmpty(t, tiles)
	assert.Zero(t, len(tiles)%2, "two pentagons per lattice site")
	for _, tile := range tiles {
		assert.Len(t, tile.Path, 5)
	}
}

func TestRecipesKeepCentersInsideExpandedFrame(t *testing.T) {
	// Lattice sites expand only from inside the frame; rendered shape
	// anchors sit at fixed offsets from them, so no tile center strays
	// further than one cell from the frame.
	f := testFrame()
	tiles, err := Triangles(f, 10, 0)
	require.NoError(t, err)
	margin := 40.0
	for _, tile := range tiles {
		assert.GreaterOrEqual(t, tile.Center.X, f.X-margin)
		assert.LessOrEqual(t, tile.Center.X, f.X+f.W+margin)
		assert.GreaterOrEqual(t, tile.Center.Y, f.Y-margin)
		assert.LessOrEqual(t, tile.Center.Y, f.Y+f.H+margin)
	}
}
