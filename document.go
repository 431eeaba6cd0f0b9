package ink

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gogpu/ink/display"
)

// Text box limits in logical units.
const (
	MinTextBoxWidth  = 100.0
	MinTextBoxHeight = 40.0

	MinFontSize = 8.0
	MaxFontSize = 200.0

	DefaultTextBoxWidth  = 200.0
	DefaultTextBoxHeight = 40.0
	DefaultFontSize      = 16.0
	DefaultFontFamily    = "sans-serif"

	// TextPadding is the inset between a text box frame and its content.
	TextPadding = 8.0
)

// TextBox is a floating text annotation on the canvas.
type TextBox struct {
	ID         string  `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Content    string  `json:"content"`
	FontSize   float64 `json:"fontSize"`
	FontFamily string  `json:"fontFamily"`
	Color      string  `json:"color"`
}

// Rect returns the frame of b.
func (b TextBox) Rect() display.Rect {
	return display.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Contains reports whether p lies inside the frame of b.
func (b TextBox) Contains(p Point) bool {
	return b.Rect().Contains(p.X, p.Y)
}

// contentWidth is the width available to wrapped text.
func (b TextBox) contentWidth() float64 {
	return max(b.Width-2*TextPadding, 1)
}

// sanitized clamps b into the ranges the overlay maintains.
func (b TextBox) sanitized() TextBox {
	b.Width = max(b.Width, MinTextBoxWidth)
	b.Height = max(b.Height, MinTextBoxHeight)
	if b.FontSize == 0 {
		b.FontSize = DefaultFontSize
	}
	b.FontSize = clamp(b.FontSize, MinFontSize, MaxFontSize)
	if b.FontFamily == "" {
		b.FontFamily = DefaultFontFamily
	}
	return b
}

// Document is the unit exchanged with the persistence layer: the committed
// strokes in paint order and the floating text boxes.
type Document struct {
	Strokes   []Stroke  `json:"strokes"`
	TextBoxes []TextBox `json:"textBoxes"`
}

// Clone returns a copy of d that shares no slices with it.
func (d Document) Clone() Document {
	c := Document{
		Strokes:   make([]Stroke, len(d.Strokes)),
		TextBoxes: append([]TextBox{}, d.TextBoxes...),
	}
	for i, s := range d.Strokes {
		c.Strokes[i] = s.Clone()
	}
	return c
}

// textBoxIndex returns the index of the box with the given ID, or -1.
func (d *Document) textBoxIndex(id string) int {
	for i := range d.TextBoxes {
		if d.TextBoxes[i].ID == id {
			return i
		}
	}
	return -1
}

// sanitize drops strokes that cannot be committed and clamps text boxes.
func (d Document) sanitize() Document {
	out := Document{
		Strokes:   make([]Stroke, 0, len(d.Strokes)),
		TextBoxes: make([]TextBox, 0, len(d.TextBoxes)),
	}
	for _, s := range d.Strokes {
		if !s.Committable() {
			Logger().Debug("ink: dropping short stroke", "id", s.ID, "points", len(s.Points))
			continue
		}
		out.Strokes = append(out.Strokes, s)
	}
	for _, b := range d.TextBoxes {
		out.TextBoxes = append(out.TextBoxes, b.sanitized())
	}
	return out
}

// EncodeDocument writes d as JSON.
func EncodeDocument(w io.Writer, d Document) error {
	if d.Strokes == nil {
		d.Strokes = []Stroke{}
	}
	if d.TextBoxes == nil {
		d.TextBoxes = []TextBox{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("ink: encode document: %w", err)
	}
	return nil
}

// DecodeDocument reads a JSON document. Strokes with fewer than two points
// are dropped and text boxes are clamped to their minimum size.
func DecodeDocument(r io.Reader) (Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Document{}, fmt.Errorf("ink: decode document: %w", err)
	}
	return d.sanitize(), nil
}
