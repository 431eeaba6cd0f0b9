// Package display holds the draw commands produced by ink's renderer and
// the backends that replay them.
//
// Rendering a page is split in two steps. ink.Render walks the document and
// emits a List of typed commands without touching any pixels; a Backend then
// replays the List onto a host surface. Keeping the commands as plain structs
// makes frames inspectable in tests and lets the same frame go to a raster
// image, a window surface or an export pipeline.
//
// # Architecture
//
//   - Command: one drawing operation (Clear, Image, Polyline, Curve, Rect, Circle, Text)
//   - List: an ordered, complete frame of commands in logical units
//   - Backend: replays commands onto an output, scaled to backing-store pixels
//
// Backends register themselves by name following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/ink/display/raster"
//
//	b, err := display.NewBackend("raster")
package display

import "github.com/gogpu/gg"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear    CommandType = iota // Fill the whole frame
	CmdImage                       // Draw a raster image
	CmdPolyline                    // Stroke an open polyline
	CmdCurve                       // Stroke one line or quadratic segment
	CmdRect                        // Fill or stroke a rectangle
	CmdCircle                      // Fill or stroke a circle
	CmdText                        // Draw one line of text
)

var commandTypeNames = [...]string{
	CmdClear:    "Clear",
	CmdImage:    "Image",
	CmdPolyline: "Polyline",
	CmdCurve:    "Curve",
	CmdRect:     "Rect",
	CmdCircle:   "Circle",
	CmdText:     "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one drawing operation in a List.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// LineCap is the shape of open line ends.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is the shape where polyline segments meet.
type LineJoin uint8

const (
	JoinRound LineJoin = iota
	JoinMiter
	JoinBevel
)

// LineStyle describes how a path is stroked.
type LineStyle struct {
	Color gg.RGBA
	Width float64
	Cap   LineCap
	Join  LineJoin
}

// Font selects a face by family name and size in logical units.
type Font struct {
	Family string
	Size   float64
}

// ClearCommand fills the whole frame with Color.
type ClearCommand struct {
	Color gg.RGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// ImageCommand draws Image scaled into Dst.
type ImageCommand struct {
	Image Image
	Dst   Rect
}

// Type implements Command.
func (ImageCommand) Type() CommandType { return CmdImage }

// PolylineCommand strokes Points as one open path.
type PolylineCommand struct {
	Points []gg.Point
	Line   LineStyle
}

// Type implements Command.
func (PolylineCommand) Type() CommandType { return CmdPolyline }

// CurveCommand strokes a single segment from From to To. When Quad is set
// the segment is a quadratic Bezier through Control, otherwise a line.
type CurveCommand struct {
	From, Control, To gg.Point
	Quad              bool
	Line              LineStyle
}

// Type implements Command.
func (CurveCommand) Type() CommandType { return CmdCurve }

// RectCommand fills Rect with Line.Color, or strokes its outline.
type RectCommand struct {
	Rect Rect
	Fill bool
	Line LineStyle
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// CircleCommand fills or strokes a circle.
type CircleCommand struct {
	Center gg.Point
	Radius float64
	Fill   bool
	Line   LineStyle
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// TextCommand draws one line of text with its baseline origin at (X, Y).
type TextCommand struct {
	Text  string
	X, Y  float64
	Font  Font
	Color gg.RGBA
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }
