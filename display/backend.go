package display

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Backend replays display commands onto an output surface.
//
// All coordinates passed to a Backend are logical canvas units. The scale
// given to Begin converts them to backing-store pixels, so a backend sized
// for a high-DPI screen draws the same frame with more pixels.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using display.Register()
//  2. Implement every drawing method (a no-op is allowed)
//  3. Leave the surface untouched when Begin fails
type Backend interface {
	// Begin prepares a width by height pixel surface drawn at scale
	// pixels per logical unit.
	Begin(width, height int, scale float64) error

	// End finalizes the frame.
	End() error

	// Clear fills the whole surface.
	Clear(c gg.RGBA)

	// DrawImage draws img scaled into dst.
	DrawImage(img Image, dst Rect)

	// StrokePolyline strokes pts as a single open path.
	StrokePolyline(pts []gg.Point, style LineStyle)

	// StrokeCurve strokes a line, or a quadratic curve through ctrl when quad is set.
	StrokeCurve(from, ctrl, to gg.Point, quad bool, style LineStyle)

	// FillRect fills r with c.
	FillRect(r Rect, c gg.RGBA)

	// StrokeRect strokes the outline of r.
	StrokeRect(r Rect, style LineStyle)

	// FillCircle fills a circle with c.
	FillCircle(center gg.Point, radius float64, c gg.RGBA)

	// StrokeCircle strokes the outline of a circle.
	StrokeCircle(center gg.Point, radius float64, style LineStyle)

	// DrawText draws s with its baseline origin at (x, y).
	DrawText(s string, x, y float64, font Font, c gg.RGBA)
}

// WriterBackend is a Backend that can encode its output to a writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered frame. It is only valid after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend is a Backend that can save its output to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered frame. It is only valid after End.
	SaveToFile(path string) error
}

// ImageBackend is a Backend whose output is a raster image.
type ImageBackend interface {
	Backend

	// Image returns the rendered frame, or nil before Begin.
	Image() image.Image
}
