package ink

import (
	"image"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/ink/display"
	"github.com/gogpu/ink/typeset"
)

// Colors of the page and of transient overlays.
var (
	PaperColor     = gg.White
	SelectionColor = gg.RGBA{R: 0.23, G: 0.51, B: 0.96, A: 1}
	CursorColor    = gg.RGBA{R: 0.4, G: 0.4, B: 0.4, A: 0.8}
)

const (
	handleDrawSize = 4.0
	caretWidth     = 1.5
)

// EraserCursor is the transient eraser indicator drawn above the page.
type EraserCursor struct {
	Center Point
	Radius float64
	// Trail holds recent cursor positions, oldest first.
	Trail []Point
}

// RenderOptions configures Render.
type RenderOptions struct {
	// Width and Height are the logical page size.
	Width, Height float64
	// Scale is the number of backing-store pixels per logical unit.
	Scale float64

	Registry *Registry
	Measurer Measurer

	// Background is drawn first, stretched over the page.
	Background image.Image
	Template   Template

	// Live is the stroke being drawn, painted above committed strokes.
	Live *Stroke
	// Eraser, when set, draws the eraser cursor and its trail.
	Eraser *EraserCursor
}

// Render builds a complete frame for doc: paper, background image,
// template, committed strokes in document order, the live stroke, text
// boxes, then the text box selection and cursors. It has no side effects.
func Render(doc Document, ov Overlay, opts RenderOptions) *display.List {
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	m := opts.Measurer
	if m == nil {
		m = typeset.Default()
	}

	l := &display.List{Width: opts.Width, Height: opts.Height, Scale: opts.Scale}
	l.Append(display.ClearCommand{Color: PaperColor})
	if opts.Background != nil {
		l.Append(display.ImageCommand{
			Image: opts.Background,
			Dst:   display.NewRect(0, 0, opts.Width, opts.Height),
		})
	}
	l.Append(opts.Template.commands(opts.Width, opts.Height)...)

	for _, s := range doc.Strokes {
		l.Append(RenderStroke(s, reg)...)
	}
	if opts.Live != nil {
		l.Append(RenderStroke(*opts.Live, reg)...)
	}

	for _, b := range doc.TextBoxes {
		l.Append(renderTextBox(b, m)...)
	}
	if i := ov.selectedIndex(&doc); i >= 0 {
		l.Append(renderSelection(doc.TextBoxes[i], ov, m)...)
	}

	if opts.Eraser != nil {
		l.Append(renderEraserCursor(*opts.Eraser)...)
	}
	return l
}

// RenderStroke returns the draw commands of one stroke. Strokes with fewer
// than two points draw nothing.
//
// A highlighter is one flat polyline at HighlighterAlpha. A pen is a chain
// of quadratic segments, each ending at the midpoint of the next source
// segment and the last drawn straight to the final point; every segment's
// width follows the average pressure of its two points.
func RenderStroke(s Stroke, reg *Registry) []display.Command {
	if len(s.Points) < MinStrokePoints {
		return nil
	}
	if reg == nil {
		reg = DefaultRegistry()
	}
	color := resolveColor(s.Color)
	width := s.Width
	if width <= 0 {
		width = DefaultStrokeWidth
	}
	pts := SmoothStroke(s, reg)

	if s.Tool == ToolHighlighter {
		poly := make([]gg.Point, len(pts))
		for i, p := range pts {
			poly[i] = gg.Pt(p.X, p.Y)
		}
		return []display.Command{display.PolylineCommand{
			Points: poly,
			Line: display.LineStyle{
				Color: withAlpha(color, HighlighterAlpha),
				Width: width,
				Cap:   display.CapButt,
				Join:  display.JoinRound,
			},
		}}
	}

	entry := reg.Lookup(s.PenStyle)
	color = withAlpha(color, entry.Opacity)
	cmds := make([]display.Command, 0, len(pts)-1)
	from := pts[0]
	for i := 0; i < len(pts)-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		line := display.LineStyle{
			Color: color,
			Width: width * entry.WidthMultiplier((p0.Pressure+p1.Pressure)/2),
			Cap:   display.CapRound,
			Join:  display.JoinRound,
		}
		if i < len(pts)-2 {
			to := midpoint(p1, pts[i+2])
			cmds = append(cmds, display.CurveCommand{
				From: gg.Pt(from.X, from.Y), Control: gg.Pt(p1.X, p1.Y), To: gg.Pt(to.X, to.Y),
				Quad: true, Line: line,
			})
			from = to
			continue
		}
		cmds = append(cmds, display.CurveCommand{
			From: gg.Pt(from.X, from.Y), To: gg.Pt(p1.X, p1.Y), Line: line,
		})
	}
	return cmds
}

// renderTextBox draws the wrapped content of b.
func renderTextBox(b TextBox, m Measurer) []display.Command {
	if b.Content == "" {
		return nil
	}
	font := display.Font{Family: b.FontFamily, Size: b.FontSize}
	color := resolveColor(b.Color)
	lh := m.LineHeight(b.FontFamily, b.FontSize)
	baseline := b.Y + TextPadding + m.Ascent(b.FontFamily, b.FontSize)

	lines := m.Wrap(b.Content, b.FontFamily, b.FontSize, b.contentWidth())
	cmds := make([]display.Command, 0, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		cmds = append(cmds, display.TextCommand{
			Text:  line,
			X:     b.X + TextPadding,
			Y:     baseline + float64(i)*lh,
			Font:  font,
			Color: color,
		})
	}
	return cmds
}

// renderSelection draws the frame of the selected box, plus its handles
// when selected or its caret when editing.
func renderSelection(b TextBox, ov Overlay, m Measurer) []display.Command {
	frame := display.LineStyle{Color: SelectionColor, Width: 1, Join: display.JoinMiter}
	cmds := []display.Command{display.RectCommand{Rect: b.Rect(), Line: frame}}

	switch ov.State {
	case StateSelected:
		for _, h := range Handles {
			c := HandlePoint(b, h)
			r := display.NewRect(c.X-handleDrawSize, c.Y-handleDrawSize, 2*handleDrawSize, 2*handleDrawSize)
			cmds = append(cmds,
				display.RectCommand{Rect: r, Fill: true, Line: display.LineStyle{Color: gg.White}},
				display.RectCommand{Rect: r, Line: frame},
			)
		}
	case StateEditing:
		x, y, h := caretPosition(b, clampCaret(b.Content, ov.Caret), m)
		cmds = append(cmds, display.CurveCommand{
			From: gg.Pt(x, y),
			To:   gg.Pt(x, y+h),
			Line: display.LineStyle{Color: resolveColor(b.Color), Width: caretWidth, Cap: display.CapButt},
		})
	}
	return cmds
}

// caretPosition returns the top of the caret and its height.
func caretPosition(b TextBox, caret int, m Measurer) (x, y, h float64) {
	h = m.LineHeight(b.FontFamily, b.FontSize)
	lines := m.Wrap(b.Content[:caret], b.FontFamily, b.FontSize, b.contentWidth())
	if len(lines) == 0 {
		lines = []string{""}
	}
	last := lines[len(lines)-1]
	if strings.HasSuffix(b.Content[:caret], "\n") && last != "" {
		lines = append(lines, "")
		last = ""
	}
	x = b.X + TextPadding + m.Advance(last, b.FontFamily, b.FontSize)
	y = b.Y + TextPadding + float64(len(lines)-1)*h
	return x, y, h
}

// renderEraserCursor draws the smoothed trail and the cursor circle.
func renderEraserCursor(c EraserCursor) []display.Command {
	var cmds []display.Command
	if len(c.Trail) > 1 {
		poly := make([]gg.Point, len(c.Trail))
		for i, p := range c.Trail {
			poly[i] = gg.Pt(p.X, p.Y)
		}
		trail := CursorColor
		trail.A *= 0.4
		cmds = append(cmds, display.PolylineCommand{
			Points: poly,
			Line:   display.LineStyle{Color: trail, Width: c.Radius, Cap: display.CapRound},
		})
	}
	cmds = append(cmds, display.CircleCommand{
		Center: gg.Pt(c.Center.X, c.Center.Y),
		Radius: c.Radius,
		Line:   display.LineStyle{Color: CursorColor, Width: 1},
	})
	return cmds
}
