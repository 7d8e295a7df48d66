// Package config maps the TOML meta-configuration to the concrete
// parameters of one generation run. The meta-config describes palettes,
// themes and time-of-day windows; picking a config resolves one pattern,
// one tiling and one theme for the run, everything else staying a weighted
// possibility.
package config

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/tiledrift/wallgen/internal/geom"
	"github.com/tiledrift/wallgen/internal/palette"
	"github.com/tiledrift/wallgen/internal/scene"
)

// MetaConfig is the parsed configuration file. Every field is optional;
// whatever the file omits keeps its built-in default.
type MetaConfig struct {
	Global  Global            `toml:"global"`
	Colors  map[string]string `toml:"colors"`
	Themes  []Theme           `toml:"themes"`
	Entries []Entry           `toml:"entries"`
}

// Global carries the run-wide numeric defaults.
type Global struct {
	Deviation     int     `toml:"deviation"`
	Weight        int     `toml:"weight"`
	Size          float64 `toml:"size"`
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	LineWidth     float64 `toml:"line-width"`
	LineColor     string  `toml:"line-color"`
	DelaunayCount int     `toml:"delaunay-count"`
	PatternCount  int     `toml:"pattern-count"`
	StripeVar     int     `toml:"stripe-var"`
	PatternWidth  float64 `toml:"pattern-width"`
}

// Theme names a weighted list of color references.
type Theme struct {
	Name   string   `toml:"name"`
	Colors []string `toml:"colors"`
}

// Entry restricts themes, patterns and tilings to a time window. Start and
// end are HHMM clock values; start > end wraps past midnight.
type Entry struct {
	Start    int      `toml:"start"`
	End      int      `toml:"end"`
	Themes   []string `toml:"themes"`
	Patterns []string `toml:"patterns"`
	Tilings  []string `toml:"tilings"`
}

func defaults() MetaConfig {
	return MetaConfig{
		Global: Global{
			Deviation:     20,
			Weight:        40,
			Size:          15,
			Width:         1920,
			Height:        1080,
			LineWidth:     1,
			LineColor:     "#000000",
			DelaunayCount: 1000,
			PatternCount:  5,
			StripeVar:     15,
			PatternWidth:  40,
		},
	}
}

// Parse reads a meta-config from TOML text, filling absent fields with the
// built-in defaults.
func Parse(data []byte) (MetaConfig, error) {
	mc := defaults()
	if err := toml.Unmarshal(data, &mc); err != nil {
		return MetaConfig{}, fmt.Errorf("parsing config: %w", err)
	}
	return mc, nil
}

// Load reads the meta-config file at path. A missing or unreadable file is
// not an error: generation falls back to the built-in defaults, as a
// wallpaper refresh should survive a deleted config.
func Load(path string, log zerolog.Logger) MetaConfig {
	if path == "" {
		return defaults()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("config not read, using defaults")
		return defaults()
	}
	mc, err := Parse(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("config not parsed, using defaults")
		return defaults()
	}
	return mc
}

// parseWeighted splits a "name:weight" reference. The weight defaults to 1.
func parseWeighted(s string) (string, int, error) {
	name, spec, found := strings.Cut(s, ":")
	if !found {
		return name, 1, nil
	}
	w, err := strconv.Atoi(spec)
	if err != nil {
		return "", 0, fmt.Errorf("weight in %q: %w", s, err)
	}
	return name, w, nil
}

func (mc MetaConfig) active(time int) []Entry {
	var out []Entry
	for _, e := range mc.Entries {
		switch {
		case e.Start <= e.End && e.Start <= time && time < e.End:
			out = append(out, e)
		case e.Start > e.End && (time >= e.Start || time < e.End):
			out = append(out, e)
		}
	}
	return out
}

// PickConfig resolves one concrete run configuration for the given HHMM
// clock time. Unknown color, theme, pattern or tiling names are logged and
// skipped; a selection left empty falls back to a uniform draw over all
// known values.
func (mc MetaConfig) PickConfig(rng *rand.Rand, time int, log zerolog.Logger) SceneCfg {
	colors := map[string]palette.Color{}
	for name, hex := range mc.Colors {
		c, err := palette.ParseHex(hex)
		if err != nil {
			log.Warn().Str("color", name).Str("value", hex).Msg("unreadable color, skipping")
			continue
		}
		colors[name] = c
	}

	themes := map[string]*Chooser[palette.Color]{}
	for _, t := range mc.Themes {
		ch := &Chooser[palette.Color]{}
		for _, ref := range t.Colors {
			name, w, err := parseWeighted(ref)
			if err != nil {
				log.Warn().Str("theme", t.Name).Str("ref", ref).Msg("unreadable color weight, skipping")
				continue
			}
			c, ok := colors[name]
			if !ok {
				log.Warn().Str("theme", t.Name).Str("color", name).Msg("unknown color, skipping")
				continue
			}
			ch.Push(c, w)
		}
		themes[t.Name] = ch
	}

	var themePick Chooser[string]
	var patternPick Chooser[scene.Pattern]
	var tilingPick Chooser[Tiling]
	patternsByName := map[string]scene.Pattern{}
	for _, p := range scene.Patterns() {
		patternsByName[p.String()] = p
	}
	tilingsByName := map[string]Tiling{}
	for _, t := range Tilings() {
		tilingsByName[t.String()] = t
	}

	for _, e := range mc.active(time) {
		for _, ref := range e.Themes {
			name, w, err := parseWeighted(ref)
			if err != nil {
				log.Warn().Str("ref", ref).Msg("unreadable theme weight, skipping")
				continue
			}
			if _, ok := themes[name]; !ok {
				log.Warn().Str("theme", name).Msg("unknown theme, skipping")
				continue
			}
			themePick.Push(name, w)
		}
		for _, ref := range e.Patterns {
			name, w, err := parseWeighted(ref)
			if err != nil {
				log.Warn().Str("ref", ref).Msg("unreadable pattern weight, skipping")
				continue
			}
			p, ok := patternsByName[name]
			if !ok {
				log.Warn().Str("pattern", name).Msg("unknown pattern, skipping")
				continue
			}
			patternPick.Push(p, w)
		}
		for _, ref := range e.Tilings {
			name, w, err := parseWeighted(ref)
			if err != nil {
				log.Warn().Str("ref", ref).Msg("unreadable tiling weight, skipping")
				continue
			}
			t, ok := tilingsByName[name]
			if !ok {
				log.Warn().Str("tiling", name).Msg("unknown tiling, skipping")
				continue
			}
			tilingPick.Push(t, w)
		}
	}

	var theme Chooser[palette.Color]
	if name, ok := themePick.Choose(rng); ok {
		theme = *themes[name]
	} else if len(mc.Themes) > 0 {
		theme = *themes[mc.Themes[rng.Intn(len(mc.Themes))].Name]
	}

	pattern, ok := patternPick.Choose(rng)
	if !ok {
		all := scene.Patterns()
		pattern = all[rng.Intn(len(all))]
	}
	tl, ok := tilingPick.Choose(rng)
	if !ok {
		all := Tilings()
		tl = all[rng.Intn(len(all))]
	}

	lineColor, err := palette.ParseHex(mc.Global.LineColor)
	if err != nil {
		log.Warn().Str("value", mc.Global.LineColor).Msg("unreadable line color, using black")
		lineColor = palette.MakeColor(0, 0, 0)
	}

	return SceneCfg{
		Theme:         theme,
		Weight:        mc.Global.Weight,
		Deviation:     mc.Global.Deviation,
		Frame:         geom.Frame{W: mc.Global.Width, H: mc.Global.Height},
		Pattern:       pattern,
		Tiling:        tl,
		PatternCount:  mc.Global.PatternCount,
		StripeVar:     mc.Global.StripeVar,
		PatternWidth:  mc.Global.PatternWidth,
		TilingSize:    mc.Global.Size,
		DelaunayCount: mc.Global.DelaunayCount,
		LineColor:     lineColor,
		LineWidth:     mc.Global.LineWidth,
	}
}
