package app

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiledrift/wallgen/internal/config"
	"github.com/tiledrift/wallgen/internal/geom"
	"github.com/tiledrift/wallgen/internal/palette"
	"github.com/tiledrift/wallgen/internal/scene"
)

func testApp(seed int64) *App {
	return &App{
		Cfg: config.SceneCfg{
			Weight:        0,
			Deviation:     0,
			Frame:         geom.Frame{W: 300, H: 200},
			Pattern:       scene.FreeCircles,
			Tiling:        config.Hexagons,
			PatternCount:  3,
			StripeVar:     10,
			PatternWidth:  30,
			TilingSize:    25,
			DelaunayCount: 50,
			LineColor:     palette.MakeColor(0, 0, 0),
			LineWidth:     1,
		},
		Rng: rand.New(rand.NewSource(seed)),
		Log: zerolog.Nop(),
	}
}

func TestGenerate(t *testing.T) {
	doc, err := testApp(1).Generate()
	require.NoError(t, err)
	assert.Positive(t, doc.Len())

	var buf bytes.Buffer
	require.NoError(t, doc.Encode(&buf))
	assert.Contains(t, buf.String(), "<path")
	assert.Contains(t, buf.String(), "stroke-width:1")
}

func TestGenerateDelaunay(t *testing.T) {
	a := testApp(2)
	a.Cfg.Tiling = config.Delaunay
	doc, err := a.Generate()
	require.NoError(t, err)
	assert.Positive(t, doc.Len())
}

func TestGenerateStrokeLikeFill(t *testing.T) {
	a := testApp(3)
	a.Cfg.LineWidth = 0
	doc, err := a.Generate()
	require.NoError(t, err)

	// With no configured line the stroke follows the fill and the width
	// floors at 0.1 so tile seams stay invisible.
	var buf bytes.Buffer
	require.NoError(t, doc.Encode(&buf))
	assert.Contains(t, buf.String(), "stroke-width:0.1")
	// Random shades have value >= 0.25, so a configured-black stroke would
	// be visible in the output if it were still applied.
	assert.NotContains(t, buf.String(), "stroke:#000000")
}

func TestGenerateRecordsAndRestoresScene(t *testing.T) {
	dir := t.TempDir()
	recPath := filepath.Join(dir, "scene.json")

	first := testApp(4)
	first.RecordPath = recPath
	_, err := first.Generate()
	require.NoError(t, err)

	second := testApp(5)
	second.Cfg.Frame = geom.Frame{W: 50, H: 50}
	second.RestorePath = recPath
	_, err = second.Generate()
	require.NoError(t, err)

	// Restoring adopts the recorded frame, not the configured one.
	assert.Equal(t, geom.Frame{W: 300, H: 200}, second.Cfg.Frame)
}

func TestGenerateRestoreMissingFile(t *testing.T) {
	a := testApp(6)
	a.RestorePath = filepath.Join(t.TempDir(), "absent.json")
	_, err := a.Generate()
	assert.Error(t, err)
}

func TestGenerateUnknownTiling(t *testing.T) {
	a := testApp(7)
	a.Cfg.Tiling = config.Tiling(99)
	_, err := a.Generate()
	assert.Error(t, err)
}
