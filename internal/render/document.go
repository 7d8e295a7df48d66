// Package render serializes colored tile paths to an SVG document.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/tiledrift/wallgen/internal/geom"
	"github.com/tiledrift/wallgen/internal/palette"
)

// Element is one filled polygon ready for output.
type Element struct {
	Path        []geom.Point
	Fill        palette.Color
	Stroke      palette.Color
	StrokeWidth float64
}

// Document accumulates elements for one image.
type Document struct {
	frame    geom.Frame
	elements []Element
}

func NewDocument(f geom.Frame) *Document {
	return &Document{frame: f}
}

func (d *Document) Add(e Element) {
	d.elements = append(d.elements, e)
}

// Len reports how many elements the document holds.
func (d *Document) Len() int { return len(d.elements) }

// pathData traces the polygon as a closed SVG path.
func pathData(pts []geom.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			fmt.Fprintf(&b, "M %g %g", p.X, p.Y)
		} else {
			fmt.Fprintf(&b, " L %g %g", p.X, p.Y)
		}
	}
	b.WriteString(" Z")
	return b.String()
}

// Encode writes the document as SVG.
func (d *Document) Encode(w io.Writer) error {
	canvas := svg.New(w)
	canvas.Start(d.frame.W, d.frame.H)
	for _, e := range d.elements {
		style := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g",
			e.Fill.Hex(), e.Stroke.Hex(), e.StrokeWidth)
		canvas.Path(pathData(e.Path), style)
	}
	canvas.End()
	return nil
}

// Save writes the document to path through a temporary sibling file and a
// rename, so a wallpaper daemon watching the path never reads a half
// written image.
func (d *Document) Save(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}
	if err := d.Encode(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
