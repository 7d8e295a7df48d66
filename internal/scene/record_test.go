package scene

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiledrift/wallgen/internal/geom"
)

func sampleScene() (*Scene, geom.Frame) {
	f := geom.Frame{W: 400, H: 300}
	regions := []Region{
		Disc{Center: geom.MakePoint(100, 100), Radius: 40, Color: flatColor(1, 0, 0)},
		HalfPlane{Limit: geom.MakePoint(200, 0), Reference: geom.MakePoint(300, 0), Color: flatColor(0, 1, 0)},
		Triangle{A: geom.MakePoint(0, 0), B: geom.MakePoint(50, 0), C: geom.MakePoint(0, 50), Color: flatColor(0, 0, 1)},
		Spiral{Center: geom.MakePoint(250, 200), Width: 20, Color: flatColor(2, 2, 0)},
		Stripe{Limit: geom.MakePoint(0, 250), Reference: geom.MakePoint(0, 280), Color: flatColor(0, 2, 2)},
	}
	return New(flatColor(9, 9, 9), regions), f
}

// Round-tripping a scene must preserve every containment boundary exactly;
// only the color sampling may differ between runs.
func TestRecordRoundTripPreservesContainment(t *testing.T) {
	s, f := sampleScene()

	rec, err := Snapshot(s, f)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, rec.Save(path))
	loaded, err := LoadRecord(path)
	require.NoError(t, err)

	restored, rf, err := Restore(loaded)
	require.NoError(t, err)
	assert.Equal(t, f, rf)
	require.Len(t, restored.Regions(), len(s.Regions()))

	rng := testRNG()
	for x := 0.0; x <= f.W; x += 13 {
		for y := 0.0; y <= f.H; y += 13 {
			p := geom.MakePoint(x, y)
			for i := range s.Regions() {
				_, want := s.Regions()[i].Contains(p, rng)
				_, got := restored.Regions()[i].Contains(p, rng)
				assert.Equal(t, want, got, "region %d at %v", i, p)
			}
		}
	}
}

func TestRecordRoundTripIdentity(t *testing.T) {
	s, f := sampleScene()
	rec, err := Snapshot(s, f)
	require.NoError(t, err)
	restored, _, err := Restore(rec)
	require.NoError(t, err)

	// The region stack survives structurally, order included.
	assert.Equal(t, s.Regions(), restored.Regions())
	assert.Equal(t, s.Background(), restored.Background())
}

func TestRestoreUnknownKind(t *testing.T) {
	rec := Record{Regions: []regionRecord{{Kind: "blob"}}}
	_, _, err := Restore(rec)
	assert.ErrorContains(t, err, "unknown kind")
}

func TestLoadRecordMissingFile(t *testing.T) {
	_, err := LoadRecord(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
