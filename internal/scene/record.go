package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tiledrift/wallgen/internal/geom"
)

// Record is the serialized form of a generated scene: background, region
// stack and frame. Restoring a record reproduces the exact containment
// boundaries, so a logged color layout can be replayed under a different
// tiling (color sampling still depends on the RNG).
type Record struct {
	Background ColorItem      `json:"background"`
	Frame      geom.Frame     `json:"frame"`
	Regions    []regionRecord `json:"regions"`
}

// regionRecord is the tagged flat encoding of one region variant. Only the
// fields relevant to the kind are meaningful; the rest stay zero.
type regionRecord struct {
	Kind      string     `json:"kind"`
	Color     ColorItem  `json:"color"`
	Center    geom.Point `json:"center,omitempty"`
	Radius    float64    `json:"radius,omitempty"`
	Limit     geom.Point `json:"limit,omitempty"`
	Reference geom.Point `json:"reference,omitempty"`
	A         geom.Point `json:"a,omitempty"`
	B         geom.Point `json:"b,omitempty"`
	C         geom.Point `json:"c,omitempty"`
	Width     float64    `json:"width,omitempty"`
}

const (
	kindDisc      = "disc"
	kindHalfPlane = "half-plane"
	kindTriangle  = "triangle"
	kindSpiral    = "spiral"
	kindStripe    = "stripe"
)

// Snapshot captures a scene and its frame into a serializable record.
func Snapshot(s *Scene, f geom.Frame) (Record, error) {
	rec := Record{Background: s.bg, Frame: f, Regions: make([]regionRecord, 0, len(s.regions))}
	for _, r := range s.regions {
		var rr regionRecord
		switch v := r.(type) {
		case Disc:
			rr = regionRecord{Kind: kindDisc, Color: v.Color, Center: v.Center, Radius: v.Radius}
		case HalfPlane:
			rr = regionRecord{Kind: kindHalfPlane, Color: v.Color, Limit: v.Limit, Reference: v.Reference}
		case Triangle:
			rr = regionRecord{Kind: kindTriangle, Color: v.Color, A: v.A, B: v.B, C: v.C}
		case Spiral:
			rr = regionRecord{Kind: kindSpiral, Color: v.Color, Center: v.Center, Width: v.Width}
		case Stripe:
			rr = regionRecord{Kind: kindStripe, Color: v.Color, Limit: v.Limit, Reference: v.Reference}
		default:
			return Record{}, fmt.Errorf("cannot serialize region of type %T", r)
		}
		rec.Regions = append(rec.Regions, rr)
	}
	return rec, nil
}

// Restore rebuilds the scene and frame captured in a record.
func Restore(rec Record) (*Scene, geom.Frame, error) {
	regions := make([]Region, 0, len(rec.Regions))
	for i, rr := range rec.Regions {
		switch rr.Kind {
		case kindDisc:
			regions = append(regions, Disc{Center: rr.Center, Radius: rr.Radius, Color: rr.Color})
		case kindHalfPlane:
			regions = append(regions, HalfPlane{Limit: rr.Limit, Reference: rr.Reference, Color: rr.Color})
		case kindTriangle:
			regions = append(regions, Triangle{A: rr.A, B: rr.B, C: rr.C, Color: rr.Color})
		case kindSpiral:
			regions = append(regions, Spiral{Center: rr.Center, Width: rr.Width, Color: rr.Color})
		case kindStripe:
			regions = append(regions, Stripe{Limit: rr.Limit, Reference: rr.Reference, Color: rr.Color})
		default:
			return nil, geom.Frame{}, fmt.Errorf("region %d: unknown kind %q", i, rr.Kind)
		}
	}
	return New(rec.Background, regions), rec.Frame, nil
}

// Save writes the record as indented JSON.
func (r Record) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding scene record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scene record: %w", err)
	}
	return nil
}

// LoadRecord reads a record previously written by Save.
func LoadRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("reading scene record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decoding scene record: %w", err)
	}
	return rec, nil
}
