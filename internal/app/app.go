// Package app wires one generation run together: resolve the scene, lay
// the tiling, color every tile and hand back a finished document.
package app

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/tiledrift/wallgen/internal/config"
	"github.com/tiledrift/wallgen/internal/render"
	"github.com/tiledrift/wallgen/internal/scene"
)

// App holds the state of one generation run.
type App struct {
	Cfg config.SceneCfg
	Rng *rand.Rand
	Log zerolog.Logger

	// RecordPath, when set, receives a snapshot of the realized scene so
	// the exact same color layout can be regenerated later.
	RecordPath string
	// RestorePath, when set, replaces the freshly built scene (and the
	// frame) with a previously recorded one.
	RestorePath string
}

// Generate produces the complete document for this run.
func (a *App) Generate() (*render.Document, error) {
	s, err := a.resolveScene()
	if err != nil {
		return nil, err
	}

	if a.RecordPath != "" {
		rec, err := scene.Snapshot(s, a.Cfg.Frame)
		if err != nil {
			return nil, err
		}
		if err := rec.Save(a.RecordPath); err != nil {
			// A failed record should not cost the wallpaper itself.
			a.Log.Warn().Err(err).Str("path", a.RecordPath).Msg("scene record not saved")
		} else {
			a.Log.Info().Str("path", a.RecordPath).Msg("scene recorded")
		}
	}

	a.Log.Debug().
		Stringer("pattern", a.Cfg.Pattern).
		Stringer("tiling", a.Cfg.Tiling).
		Msg("laying tiles")
	tiles, err := a.Cfg.MakeTiling(a.Rng)
	if err != nil {
		return nil, err
	}
	a.Log.Info().Int("tiles", len(tiles)).Msg("tiling complete")

	strokeLikeFill := a.Cfg.LineWidth < 1e-4
	strokeWidth := math.Max(a.Cfg.LineWidth, 0.1)

	doc := render.NewDocument(a.Cfg.Frame)
	for _, tile := range tiles {
		fill := s.Color(tile.Center, a.Rng)
		stroke := a.Cfg.LineColor
		if strokeLikeFill {
			stroke = fill
		}
		doc.Add(render.Element{
			Path:        tile.Path,
			Fill:        fill,
			Stroke:      stroke,
			StrokeWidth: strokeWidth,
		})
	}
	return doc, nil
}

// resolveScene builds the scene from configuration, or restores a recorded
// one. Restoring also adopts the recorded frame so containment boundaries
// land where they did originally.
func (a *App) resolveScene() (*scene.Scene, error) {
	if a.RestorePath == "" {
		return a.Cfg.MakeScene(a.Rng)
	}

	rec, err := scene.LoadRecord(a.RestorePath)
	if err != nil {
		return nil, err
	}
	s, frame, err := scene.Restore(rec)
	if err != nil {
		return nil, err
	}
	a.Cfg.Frame = frame
	a.Log.Info().Str("path", a.RestorePath).Int("regions", len(s.Regions())).Msg("scene restored")
	return s, nil
}
